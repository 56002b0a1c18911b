package config

import (
	"strings"

	"github.com/gopostr/gopos/pos"
)

// AccountFromEnv reads a gateway's merchant credentials from the
// environment. Variables are prefixed with the uppercased gateway name,
// e.g. ESTPOS_CLIENT_ID, ESTPOS_STORE_KEY. A zero ClientID means the
// gateway is not configured in this deployment.
func AccountFromEnv(gateway string) pos.Account {
	prefix := strings.ToUpper(gateway) + "_"
	return pos.Account{
		ClientID:      GetEnv(prefix+"CLIENT_ID", ""),
		TerminalID:    GetEnv(prefix+"TERMINAL_ID", ""),
		Username:      GetEnv(prefix+"USERNAME", ""),
		Password:      GetEnv(prefix+"PASSWORD", ""),
		StoreKey:      GetEnv(prefix+"STORE_KEY", ""),
		SubMerchantID: GetEnv(prefix+"SUB_MERCHANT_ID", ""),
		Lang:          pos.Lang(GetEnv(prefix+"LANG", string(pos.LangTR))),
	}
}
