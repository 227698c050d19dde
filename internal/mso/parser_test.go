package mso

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/msologic/internal/mso/msoerr"
)

func Test_Parser_Parse_word(t *testing.T) {
	testCases := []struct {
		name    string
		src     string
		wantErr error
	}{
		{name: "symbol predicate free var rejected", src: "P_a(x)", wantErr: msoerr.ErrUnboundVariable},
		{name: "order predicate free vars rejected", src: "le(x,y)", wantErr: msoerr.ErrUnboundVariable},
		{name: "membership free vars rejected", src: "in(X,x)", wantErr: msoerr.ErrUnboundVariable},
		{name: "exists wraps free var", src: "exists x(P_a(x))", wantErr: nil},
		{name: "forall desugars", src: "forall x(P_a(x))", wantErr: nil},
		{name: "conjunction", src: "exists x(and(P_a(x),P_a(x)))", wantErr: nil},
		{name: "implication", src: "exists x(->(P_a(x),P_a(x)))", wantErr: nil},
		{name: "biimplication", src: "exists x(<->(P_a(x),P_a(x)))", wantErr: nil},
		{name: "even set", src: "exists X(even(X))", wantErr: nil},
		{name: "card_eq", src: "exists X(exists Y(card_eq(X,Y)))", wantErr: nil},
		{name: "s1 seed scenario", src: "exists x(P_a(x))", wantErr: nil},
		{name: "garbage rejected", src: "not even close to valid ><", wantErr: msoerr.ErrSyntax},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewParser(ModeWord)
			n, err := p.Parse(tc.src)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, n)
			assert.Empty(t, n.FreeVars())
		})
	}
}

func Test_Parser_Parse_tree(t *testing.T) {
	p := NewParser(ModeTree)
	n, err := p.Parse("exists x(exists y(and(left(x,y),P_a(x))))")
	require.NoError(t, err)
	assert.Equal(t, NodeExists, n.Kind)

	_, err = p.Parse("exists x(exists y(le(x,y)))")
	require.Error(t, err)
	assert.ErrorIs(t, err, msoerr.ErrSyntax)
}

func Test_Parser_Parse_s2_seed_scenario(t *testing.T) {
	// φ = ∀x (P_a(x) → ∃y (P_b(y) ∧ le(x,y)))
	p := NewParser(ModeWord)
	n, err := p.Parse("forall x(->(P_a(x),exists y(and(P_b(y),le(x,y)))))")
	require.NoError(t, err)
	require.Equal(t, NodeNot, n.Kind)
}

func Test_Node_Desugar_forall(t *testing.T) {
	n := &Node{Kind: NodeForAll, Var: "x", VarKind: FirstOrder, Body: &Node{Kind: NodeSymbol, Symbol: 'a', VarA: "x"}}
	d := n.Desugar()
	require.Equal(t, NodeNot, d.Kind)
	require.Equal(t, NodeExists, d.Operand.Kind)
	require.Equal(t, NodeNot, d.Operand.Body.Kind)
}
