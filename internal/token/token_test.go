package token

import "testing"

func TestLookupIdent(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"program", KW_PROGRAM},
		{"let", KW_LET},
		{"if", KW_IF},
		{"else", KW_ELSE},
		{"while", KW_WHILE},
		{"int", KW_INT},
		{"bool", KW_BOOL},
		{"float", KW_FLOAT},
		{"str", KW_STR},
		{"write", IDENT},
		{"Program", IDENT},
		{"integer", IDENT},
		{"_", IDENT},
	}
	for _, tt := range tests {
		if got := LookupIdent(tt.ident); got != tt.want {
			t.Errorf("LookupIdent(%q): expected %s, got %s", tt.ident, tt.want, got)
		}
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := ILLEGAL; k <= KW_STR; k++ {
		if _, ok := kindNames[k]; !ok {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Errorf("unexpected name for unknown kind: %s", got)
	}
}

func TestKindClasses(t *testing.T) {
	for word, k := range keywords {
		if !k.IsKeyword() {
			t.Errorf("%s: expected keyword", word)
		}
		if k.String() != word {
			t.Errorf("%s: name mismatch %q", word, k.String())
		}
	}
	for _, k := range []Kind{KW_INT, KW_BOOL, KW_FLOAT, KW_STR} {
		if !k.IsTypeName() {
			t.Errorf("%s: expected type name", k)
		}
	}
	for _, k := range []Kind{KW_LET, KW_PROGRAM, IDENT, INT} {
		if k.IsTypeName() {
			t.Errorf("%s: unexpected type name", k)
		}
	}
	for _, k := range []Kind{IDENT, INT, FLOAT, STRING} {
		if !k.IsLiteral() || k.IsKeyword() {
			t.Errorf("%s: expected literal", k)
		}
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: KW_INT, Lexeme: "int"}, "'int'"},
		{Token{Kind: COLON, Lexeme: ":"}, "':'"},
		{Token{Kind: IDENT, Lexeme: "x"}, "identifier 'x'"},
		{Token{Kind: INT, Lexeme: "42"}, "integer literal '42'"},
		{Token{Kind: STRING, Lexeme: `"hi"`}, `string literal "hi"`},
		{Token{Kind: EOF}, "end of input"},
	}
	for _, tt := range tests {
		if got := tt.tok.Describe(); got != tt.want {
			t.Errorf("Describe(%s): expected %s, got %s", tt.tok, tt.want, got)
		}
	}
	if got := SEMICOLON.Describe(); got != "';'" {
		t.Errorf("expected ';' quoted, got %s", got)
	}
	if got := IDENT.Describe(); got != "identifier" {
		t.Errorf("expected identifier, got %s", got)
	}
}
