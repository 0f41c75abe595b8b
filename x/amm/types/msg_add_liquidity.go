package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgAddLiquidity{}

// MsgAddLiquidity defines a message to deposit both pool assets in exchange
// for claim tokens.
type MsgAddLiquidity struct {
	Provider       string   `json:"provider"`
	TokenA         string   `json:"token_a"`
	TokenB         string   `json:"token_b"`
	AmountADesired math.Int `json:"amount_a_desired"`
	AmountBDesired math.Int `json:"amount_b_desired"`
	AmountAMin     math.Int `json:"amount_a_min"`
	AmountBMin     math.Int `json:"amount_b_min"`
	To             string   `json:"to"`
	Deadline       int64    `json:"deadline"`
}

// NewMsgAddLiquidity creates a new MsgAddLiquidity instance
func NewMsgAddLiquidity(provider, tokenA, tokenB string, amountADesired, amountBDesired, amountAMin, amountBMin math.Int, to string, deadline int64) *MsgAddLiquidity {
	return &MsgAddLiquidity{
		Provider:       provider,
		TokenA:         tokenA,
		TokenB:         tokenB,
		AmountADesired: amountADesired,
		AmountBDesired: amountBDesired,
		AmountAMin:     amountAMin,
		AmountBMin:     amountBMin,
		To:             to,
		Deadline:       deadline,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgAddLiquidity) Reset() { *msg = MsgAddLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgAddLiquidity) String() string {
	return fmt.Sprintf("MsgAddLiquidity{%s %s/%s}", msg.Provider, msg.TokenA, msg.TokenB)
}

// ProtoMessage implements the proto.Message interface
func (msg *MsgAddLiquidity) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) Type() string { return "add_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgAddLiquidity) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgAddLiquidity) ValidateBasic() error {
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

	if msg.AmountADesired.IsNil() || !msg.AmountADesired.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount A must be positive")
	}
	if msg.AmountBDesired.IsNil() || !msg.AmountBDesired.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "desired amount B must be positive")
	}
	if msg.AmountAMin.IsNil() || msg.AmountAMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount A cannot be negative")
	}
	if msg.AmountBMin.IsNil() || msg.AmountBMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount B cannot be negative")
	}
	if msg.AmountAMin.GT(msg.AmountADesired) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount A exceeds desired amount")
	}
	if msg.AmountBMin.GT(msg.AmountBDesired) {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount B exceeds desired amount")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be a positive unix timestamp")
	}

	return nil
}
