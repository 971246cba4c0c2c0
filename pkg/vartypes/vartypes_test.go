package vartypes

import (
	"testing"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRaw(t *testing.T) {
	strList := ListType{Item: StringType{}}

	tests := []struct {
		name    string
		typ     Type
		raw     any
		want    expr.Value
		wantErr bool
	}{
		{"string", StringType{}, "hello", expr.Lit("hello"), false},
		{"string reference", StringType{}, "${lib.outdir}", expr.Ref("lib", "outdir"), false},
		{"partial reference stays literal", StringType{}, "x ${lib.outdir}", expr.Lit("x ${lib.outdir}"), false},
		{"string rejects int", StringType{}, 3, nil, true},
		{"bool", BoolType{}, true, expr.BoolOf(true), false},
		{"bool reference", BoolType{}, "${a.b}", expr.Ref("a", "b"), false},
		{"bool rejects string", BoolType{}, "yes", nil, true},
		{"list", strList, []any{"echo hi", "echo bye"}, expr.Strings("echo hi", "echo bye"), false},
		{"empty list", strList, []any{}, expr.List{Items: []expr.Value{}}, false},
		{"scalar becomes list", strList, "make", expr.Strings("make"), false},
		{"scalar reference becomes item", strList, "${other.commands}", expr.ListOf(expr.Ref("other", "commands")), false},
		{"list item reference", strList, []any{"${a.b}"}, expr.ListOf(expr.Ref("a", "b")), false},
		{"list rejects bad item", strList, []any{"ok", 1}, nil, true},
		{"list rejects map", strList, map[string]any{}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.typ.FromRaw(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrPropertyType))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidate(t *testing.T) {
	strList := ListType{Item: StringType{}}

	assert.NoError(t, StringType{}.Validate(expr.Lit("x")))
	assert.NoError(t, StringType{}.Validate(expr.Ref("a", "b")))
	assert.Error(t, StringType{}.Validate(expr.BoolOf(true)))

	assert.NoError(t, BoolType{}.Validate(expr.BoolOf(false)))
	assert.Error(t, BoolType{}.Validate(expr.Lit("true")))

	assert.NoError(t, strList.Validate(expr.Strings("a", "b")))
	assert.NoError(t, strList.Validate(expr.Ref("a", "b")))
	assert.Error(t, strList.Validate(expr.Lit("a")))
	assert.Error(t, strList.Validate(expr.ListOf(expr.BoolOf(true))))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "list of strings", ListType{Item: StringType{}}.Name())
	assert.Equal(t, "bool", BoolType{}.Name())
}
