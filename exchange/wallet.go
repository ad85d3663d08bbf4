package exchange

// LedgerEntry is a single balance movement on the account (a trade, deposit, withdrawal, etc.).
type LedgerEntry struct {
	Action       string `json:"action"`
	Type         string `json:"type"`
	TradeID      string `json:"trade_id,omitempty"`
	DepositID    string `json:"deposit_id,omitempty"`
	WithdrawalID string `json:"withdrawal_id,omitempty"`
	Currency     string `json:"currency"`
	Amount       Amount `json:"amount"`
	Balance      Amount `json:"balance"`
	Timestamp    int64  `json:"timestamp"`
}

type Address struct {
	Currency  string `json:"currency"`
	Address   string `json:"address"`
	Type      string `json:"type"`
	CreatedAt int64  `json:"created_at"`
}

type Deposit struct {
	DepositID             string `json:"deposit_id"`
	Status                string `json:"status"`
	Confirmations         int    `json:"confirmations"`
	RequiredConfirmations int    `json:"required_confirmations"`
	FromAddress           string `json:"from_address"`
	TxHash                string `json:"txhash"`
	Currency              string `json:"currency"`
	Amount                Amount `json:"amount"`
	Fee                   Amount `json:"fee"`
	CreatedAt             int64  `json:"created_at"`
	CompletedAt           int64  `json:"completed_at"`
}

type Withdrawal struct {
	WithdrawalID          string `json:"withdrawal_id"`
	Status                string `json:"status"`
	Confirmations         int    `json:"confirmations"`
	RequiredConfirmations int    `json:"required_confirmations"`
	ToAddress             string `json:"to_address"`
	TxHash                string `json:"txhash"`
	Currency              string `json:"currency"`
	Amount                Amount `json:"amount"`
	Fee                   Amount `json:"fee"`
	CreatedAt             int64  `json:"created_at"`
	SentAt                int64  `json:"sent_at"`
	CompletedAt           int64  `json:"completed_at"`
}
