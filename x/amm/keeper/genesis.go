package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/pairpool/pairpool/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid amm genesis state: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.Pool != nil {
		if err := k.SetPool(ctx, *genState.Pool); err != nil {
			return fmt.Errorf("failed to set pool: %w", err)
		}
		sdk.UnwrapSDKContext(ctx).Logger().Info("amm pool configured",
			"token_a", genState.Pool.TokenA,
			"token_b", genState.Pool.TokenB,
			"total_shares", genState.Pool.TotalShares.String())
	}

	return nil
}

// ExportGenesis returns the module's state for export.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{Params: params}

	pool, err := k.GetPool(ctx)
	if err == nil {
		genState.Pool = &pool
	} else if !types.ErrPoolNotFound.Is(err) {
		return nil, err
	}

	return genState, nil
}
