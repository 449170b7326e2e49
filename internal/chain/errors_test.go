package chain

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	cause := errors.New("execution reverted")

	withHash := newError(KindRevert, "0xdeadbeef", cause)
	assert.Equal(t, "chain revert (tx 0xdeadbeef): execution reverted", withHash.Error())

	withoutHash := newError(KindRPC, "", cause)
	assert.Equal(t, "chain rpc: execution reverted", withoutHash.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("receipt wait timed out")
	err := newError(KindTimeout, "0xabc", cause)

	assert.ErrorIs(t, err, cause)

	var chainErr *Error
	assert.ErrorAs(t, err, &chainErr)
	assert.Equal(t, KindTimeout, chainErr.Kind)
	assert.Equal(t, "0xabc", chainErr.TxHash)
}

func TestWinnerOrNil(t *testing.T) {
	assert.Nil(t, winnerOrNil(common.Address{}))

	winner := winnerOrNil(common.HexToAddress("0x1AF96A33EE18DC85A0071EB4D6B0A57449F57B5F"))
	if assert.NotNil(t, winner) {
		assert.Equal(t, "0x1af96a33ee18dc85a0071eb4d6b0a57449f57b5f", *winner)
	}
}
