package cobinhood

import (
	"context"

	"github.com/lukehollenback/cobinhood/exchange"
)

func (o *Client) GetLedger(ctx context.Context, currency string) ([]exchange.LedgerEntry, error) {
	params := Params{}
	endpoint := WalletLedger.WithFilter("currency", currency, params)

	var ledger []exchange.LedgerEntry

	if err := o.call(ctx, endpoint, params, nil, "ledger", &ledger); err != nil {
		return nil, err
	}

	return ledger, nil
}

func (o *Client) GetDepositAddresses(ctx context.Context, currency string) ([]exchange.Address, error) {
	return o.addresses(ctx, WalletDepositAddresses, currency, "deposit_addresses")
}

func (o *Client) GetWithdrawalAddresses(ctx context.Context, currency string) ([]exchange.Address, error) {
	return o.addresses(ctx, WalletWithdrawalAddresses, currency, "withdrawal_addresses")
}

func (o *Client) addresses(ctx context.Context, endpoint Endpoint, currency string, entry string) ([]exchange.Address, error) {
	params := Params{}
	endpoint = endpoint.WithFilter("currency", currency, params)

	var addresses []exchange.Address

	if err := o.call(ctx, endpoint, params, nil, entry, &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (o *Client) GetDeposits(ctx context.Context, currency string) ([]exchange.Deposit, error) {
	params := Params{}
	endpoint := WalletDeposits.WithFilter("currency", currency, params)

	var deposits []exchange.Deposit

	if err := o.call(ctx, endpoint, params, nil, "deposits", &deposits); err != nil {
		return nil, err
	}

	return deposits, nil
}

func (o *Client) GetWithdrawals(ctx context.Context, currency string) ([]exchange.Withdrawal, error) {
	params := Params{}
	endpoint := WalletWithdrawals.WithFilter("currency", currency, params)

	var withdrawals []exchange.Withdrawal

	if err := o.call(ctx, endpoint, params, nil, "withdrawals", &withdrawals); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

func (o *Client) GetDeposit(ctx context.Context, depositID string) (*exchange.Deposit, error) {
	var deposit exchange.Deposit

	if err := o.call(ctx, WalletDeposit, Params{"deposit_id": depositID}, nil, "deposit", &deposit); err != nil {
		return nil, err
	}

	return &deposit, nil
}

func (o *Client) GetWithdrawal(ctx context.Context, withdrawalID string) (*exchange.Withdrawal, error) {
	var withdrawal exchange.Withdrawal

	if err := o.call(ctx, WalletWithdrawal, Params{"withdrawal_id": withdrawalID}, nil, "withdrawal", &withdrawal); err != nil {
		return nil, err
	}

	return &withdrawal, nil
}
