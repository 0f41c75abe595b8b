package types

import "fmt"

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store keys. The module manages a single pool, so both the pool record and
// the params are stored under fixed keys.
var (
	PoolKey   = []byte{0x01} // key for the pool record
	ParamsKey = []byte{0x02} // key for module parameters
)

// ShareDenomPrefix prefixes the claim-token denomination issued for pool
// ownership. The full denom embeds the pair so share coins from differently
// configured deployments never collide.
const ShareDenomPrefix = ModuleName + "/share"

// ShareDenom returns the claim-token denom for a token pair. Tokens are
// sorted so both orderings map to the same denom.
func ShareDenom(tokenA, tokenB string) string {
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
	}
	return fmt.Sprintf("%s/%s/%s", ShareDenomPrefix, tokenA, tokenB)
}
