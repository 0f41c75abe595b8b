package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgRemoveLiquidity{}

// MsgRemoveLiquidity defines a message to burn claim tokens and withdraw the
// proportional share of both pool assets.
type MsgRemoveLiquidity struct {
	Provider   string   `json:"provider"`
	TokenA     string   `json:"token_a"`
	TokenB     string   `json:"token_b"`
	Liquidity  math.Int `json:"liquidity"`
	AmountAMin math.Int `json:"amount_a_min"`
	AmountBMin math.Int `json:"amount_b_min"`
	To         string   `json:"to"`
	Deadline   int64    `json:"deadline"`
}

// NewMsgRemoveLiquidity creates a new MsgRemoveLiquidity instance
func NewMsgRemoveLiquidity(provider, tokenA, tokenB string, liquidity, amountAMin, amountBMin math.Int, to string, deadline int64) *MsgRemoveLiquidity {
	return &MsgRemoveLiquidity{
		Provider:   provider,
		TokenA:     tokenA,
		TokenB:     tokenB,
		Liquidity:  liquidity,
		AmountAMin: amountAMin,
		AmountBMin: amountBMin,
		To:         to,
		Deadline:   deadline,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgRemoveLiquidity) Reset() { *msg = MsgRemoveLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgRemoveLiquidity) String() string {
	return fmt.Sprintf("MsgRemoveLiquidity{%s %s/%s}", msg.Provider, msg.TokenA, msg.TokenB)
}

// ProtoMessage implements the proto.Message interface
func (msg *MsgRemoveLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) Type() string { return "remove_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgRemoveLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgRemoveLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.TokenA == "" || msg.TokenB == "" {
		return sdkerrors.Wrap(ErrInvalidPair, "token denominations cannot be empty")
	}
	if msg.TokenA == msg.TokenB {
		return sdkerrors.Wrap(ErrInvalidPair, "tokens must be different")
	}

	if msg.Liquidity.IsNil() || !msg.Liquidity.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "liquidity must be positive")
	}
	if msg.AmountAMin.IsNil() || msg.AmountAMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount A cannot be negative")
	}
	if msg.AmountBMin.IsNil() || msg.AmountBMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount B cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be a positive unix timestamp")
	}

	return nil
}
