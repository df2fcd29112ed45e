package token

// keywords maps spellings to keyword kinds. Lookup happens once per
// identifier-shaped token in the lexer.
var keywords = map[string]Kind{
	"void":        KwVoid,
	"bool":        KwBool,
	"char":        KwChar,
	"short":       KwShort,
	"int":         KwInt,
	"long":        KwLong,
	"float":       KwFloat,
	"double":      KwDouble,
	"signed":      KwSigned,
	"unsigned":    KwUnsigned,
	"const":       KwConst,
	"typedef":     KwTypedef,
	"if":          KwIf,
	"else":        KwElse,
	"while":       KwWhile,
	"do":          KwDo,
	"for":         KwFor,
	"switch":      KwSwitch,
	"case":        KwCase,
	"default":     KwDefault,
	"break":       KwBreak,
	"continue":    KwContinue,
	"return":      KwReturn,
	"true":        KwTrue,
	"false":       KwFalse,
	"static_cast": KwStaticCast,
}

// LookupKeyword returns the keyword kind for a spelling, or Ident.
func LookupKeyword(s string) Kind {
	if k, ok := keywords[s]; ok {
		return k
	}
	return Ident
}
