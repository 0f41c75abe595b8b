package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgSwap{}

// MsgSwap defines a message to swap an exact input amount of one pool asset
// for the other. TokenIn and TokenOut form the two-element swap path and must
// be the pool's pair in either order.
type MsgSwap struct {
	Trader       string   `json:"trader"`
	TokenIn      string   `json:"token_in"`
	TokenOut     string   `json:"token_out"`
	AmountIn     math.Int `json:"amount_in"`
	AmountOutMin math.Int `json:"amount_out_min"`
	To           string   `json:"to"`
	Deadline     int64    `json:"deadline"`
}

// NewMsgSwap creates a new MsgSwap instance
func NewMsgSwap(trader, tokenIn, tokenOut string, amountIn, amountOutMin math.Int, to string, deadline int64) *MsgSwap {
	return &MsgSwap{
		Trader:       trader,
		TokenIn:      tokenIn,
		TokenOut:     tokenOut,
		AmountIn:     amountIn,
		AmountOutMin: amountOutMin,
		To:           to,
		Deadline:     deadline,
	}
}

// Reset implements the proto.Message interface
func (msg *MsgSwap) Reset() { *msg = MsgSwap{} }

// String implements the proto.Message interface
func (msg *MsgSwap) String() string {
	return fmt.Sprintf("MsgSwap{%s %s->%s}", msg.Trader, msg.TokenIn, msg.TokenOut)
}

// ProtoMessage implements the proto.Message interface
func (msg *MsgSwap) ProtoMessage() {}

// Route implements the legacy sdk.Msg interface
func (msg MsgSwap) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (msg MsgSwap) Type() string { return "swap" }

// GetSigners implements the legacy sdk.Msg interface
func (msg MsgSwap) GetSigners() []sdk.AccAddress {
	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{trader}
}

// GetSignBytes implements the legacy sdk.Msg interface
func (msg MsgSwap) GetSignBytes() []byte {
	return sdk.MustSortJSON(ModuleCdc.MustMarshalJSON(&msg))
}

// ValidateBasic performs stateless validation of the message.
func (msg MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Trader); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid trader address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.To); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.TokenIn == "" || msg.TokenOut == "" {
		return sdkerrors.Wrap(ErrInvalidPair, "token denominations cannot be empty")
	}
	if msg.TokenIn == msg.TokenOut {
		return sdkerrors.Wrap(ErrInvalidPair, "cannot swap identical tokens")
	}

	if msg.AmountIn.IsNil() || !msg.AmountIn.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidAmount, "amount in must be positive")
	}
	if msg.AmountOutMin.IsNil() || msg.AmountOutMin.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "minimum amount out cannot be negative")
	}

	if msg.Deadline <= 0 {
		return sdkerrors.Wrap(ErrInvalidAmount, "deadline must be a positive unix timestamp")
	}

	return nil
}
