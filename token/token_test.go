package token_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noxabellus/lexio/token"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "Identifier", token.Identifier.String())
	require.Equal(t, "Number", token.Number.String())
	require.Equal(t, "Kind(42)", token.Kind(42).String())
}

func TestTokenString(t *testing.T) {
	id := token.Token{Kind: token.Identifier, Pos: 4, Text: "_x9"}
	require.Equal(t, `4: Identifier("_x9")`, id.String())

	num := token.Token{Kind: token.Number, Pos: 0, Value: 123}
	require.Equal(t, "0: Number(123)", num.String())
}

func TestPosIsValid(t *testing.T) {
	require.True(t, token.Pos(0).IsValid())
	require.False(t, token.Pos(-1).IsValid())
}
