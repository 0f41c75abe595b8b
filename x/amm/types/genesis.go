package types

// GenesisState holds the module's genesis configuration: the parameters and
// the pool's pair. The pool starts with zero reserves unless state is being
// migrated from an export.
type GenesisState struct {
	Params Params `json:"params"`
	Pool   *Pool  `json:"pool,omitempty"`
}

// DefaultGenesis returns the default genesis state. No pool is configured;
// a deployment supplies its pair through genesis.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Pool:   nil,
	}
}

// NewGenesisState builds a genesis state with an empty pool for the given
// pair.
func NewGenesisState(params Params, tokenA, tokenB string) *GenesisState {
	pool := NewPool(tokenA, tokenB)
	return &GenesisState{
		Params: params,
		Pool:   &pool,
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.Pool != nil {
		return gs.Pool.Validate()
	}
	return nil
}
