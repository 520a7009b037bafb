package style

// SpacesStyle decides where single spaces go between tokens on one line.
type SpacesStyle struct {
	BeforeParentheses BeforeParentheses `yaml:"beforeParentheses" toml:"beforeParentheses"`
	AroundOperators   AroundOperators   `yaml:"aroundOperators" toml:"aroundOperators"`
	BeforeLeftBrace   BeforeLeftBrace   `yaml:"beforeLeftBrace" toml:"beforeLeftBrace"`
	BeforeKeywords    BeforeKeywords    `yaml:"beforeKeywords" toml:"beforeKeywords"`
	Within            Within            `yaml:"within" toml:"within"`
	TernaryOperator   TernaryOperator   `yaml:"ternaryOperator" toml:"ternaryOperator"`
	TypeArguments     TypeArguments     `yaml:"typeArguments" toml:"typeArguments"`
	Other             OtherSpaces       `yaml:"other" toml:"other"`
	TypeParameters    TypeParameters    `yaml:"typeParameters" toml:"typeParameters"`
}

type BeforeParentheses struct {
	MethodDeclaration bool `yaml:"methodDeclaration" toml:"methodDeclaration"`
	MethodCall        bool `yaml:"methodCall" toml:"methodCall"`
	If                bool `yaml:"if" toml:"if"`
	For               bool `yaml:"for" toml:"for"`
	While             bool `yaml:"while" toml:"while"`
	Switch            bool `yaml:"switch" toml:"switch"`
	Try               bool `yaml:"try" toml:"try"`
	Catch             bool `yaml:"catch" toml:"catch"`
	Synchronized      bool `yaml:"synchronized" toml:"synchronized"`
	Annotation        bool `yaml:"annotation" toml:"annotation"`
}

type AroundOperators struct {
	Assignment      bool `yaml:"assignment" toml:"assignment"`
	Logical         bool `yaml:"logical" toml:"logical"`
	Equality        bool `yaml:"equality" toml:"equality"`
	Relational      bool `yaml:"relational" toml:"relational"`
	Bitwise         bool `yaml:"bitwise" toml:"bitwise"`
	Additive        bool `yaml:"additive" toml:"additive"`
	Multiplicative  bool `yaml:"multiplicative" toml:"multiplicative"`
	Shift           bool `yaml:"shift" toml:"shift"`
	Unary           bool `yaml:"unary" toml:"unary"`
	LambdaArrow     bool `yaml:"lambdaArrow" toml:"lambdaArrow"`
	MethodReference bool `yaml:"methodReference" toml:"methodReference"`
}

type BeforeLeftBrace struct {
	Class                      bool `yaml:"class" toml:"class"`
	Method                     bool `yaml:"method" toml:"method"`
	If                         bool `yaml:"if" toml:"if"`
	Else                       bool `yaml:"else" toml:"else"`
	For                        bool `yaml:"for" toml:"for"`
	While                      bool `yaml:"while" toml:"while"`
	Do                         bool `yaml:"do" toml:"do"`
	Switch                     bool `yaml:"switch" toml:"switch"`
	Try                        bool `yaml:"try" toml:"try"`
	Catch                      bool `yaml:"catch" toml:"catch"`
	Finally                    bool `yaml:"finally" toml:"finally"`
	Synchronized               bool `yaml:"synchronized" toml:"synchronized"`
	ArrayInitializer           bool `yaml:"arrayInitializer" toml:"arrayInitializer"`
	AnnotationArrayInitializer bool `yaml:"annotationArrayInitializer" toml:"annotationArrayInitializer"`
}

type BeforeKeywords struct {
	Else    bool `yaml:"else" toml:"else"`
	While   bool `yaml:"while" toml:"while"`
	Catch   bool `yaml:"catch" toml:"catch"`
	Finally bool `yaml:"finally" toml:"finally"`
}

// Within controls the spaces just inside delimiters.
type Within struct {
	CodeBraces                        bool `yaml:"codeBraces" toml:"codeBraces"`
	Brackets                          bool `yaml:"brackets" toml:"brackets"`
	ArrayInitializerBraces            bool `yaml:"arrayInitializerBraces" toml:"arrayInitializerBraces"`
	EmptyArrayInitializerBraces       bool `yaml:"emptyArrayInitializerBraces" toml:"emptyArrayInitializerBraces"`
	GroupingParentheses               bool `yaml:"groupingParentheses" toml:"groupingParentheses"`
	MethodDeclarationParentheses      bool `yaml:"methodDeclarationParentheses" toml:"methodDeclarationParentheses"`
	EmptyMethodDeclarationParentheses bool `yaml:"emptyMethodDeclarationParentheses" toml:"emptyMethodDeclarationParentheses"`
	MethodCallParentheses             bool `yaml:"methodCallParentheses" toml:"methodCallParentheses"`
	EmptyMethodCallParentheses        bool `yaml:"emptyMethodCallParentheses" toml:"emptyMethodCallParentheses"`
	IfParentheses                     bool `yaml:"ifParentheses" toml:"ifParentheses"`
	ForParentheses                    bool `yaml:"forParentheses" toml:"forParentheses"`
	WhileParentheses                  bool `yaml:"whileParentheses" toml:"whileParentheses"`
	SwitchParentheses                 bool `yaml:"switchParentheses" toml:"switchParentheses"`
	TryParentheses                    bool `yaml:"tryParentheses" toml:"tryParentheses"`
	CatchParentheses                  bool `yaml:"catchParentheses" toml:"catchParentheses"`
	SynchronizedParentheses           bool `yaml:"synchronizedParentheses" toml:"synchronizedParentheses"`
	TypeCastParentheses               bool `yaml:"typeCastParentheses" toml:"typeCastParentheses"`
	AnnotationParentheses             bool `yaml:"annotationParentheses" toml:"annotationParentheses"`
	AngleBrackets                     bool `yaml:"angleBrackets" toml:"angleBrackets"`
	RecordHeader                      bool `yaml:"recordHeader" toml:"recordHeader"`
}

type TernaryOperator struct {
	BeforeQuestionMark bool `yaml:"beforeQuestionMark" toml:"beforeQuestionMark"`
	AfterQuestionMark  bool `yaml:"afterQuestionMark" toml:"afterQuestionMark"`
	BeforeColon        bool `yaml:"beforeColon" toml:"beforeColon"`
	AfterColon         bool `yaml:"afterColon" toml:"afterColon"`
}

type TypeArguments struct {
	AfterComma                bool `yaml:"afterComma" toml:"afterComma"`
	BeforeOpeningAngleBracket bool `yaml:"beforeOpeningAngleBracket" toml:"beforeOpeningAngleBracket"`
}

type OtherSpaces struct {
	BeforeComma             bool `yaml:"beforeComma" toml:"beforeComma"`
	AfterComma              bool `yaml:"afterComma" toml:"afterComma"`
	BeforeForSemicolon      bool `yaml:"beforeForSemicolon" toml:"beforeForSemicolon"`
	AfterForSemicolon       bool `yaml:"afterForSemicolon" toml:"afterForSemicolon"`
	AfterTypeCast           bool `yaml:"afterTypeCast" toml:"afterTypeCast"`
	BeforeColonInForEach    bool `yaml:"beforeColonInForEach" toml:"beforeColonInForEach"`
	InsideOneLineEnumBraces bool `yaml:"insideOneLineEnumBraces" toml:"insideOneLineEnumBraces"`
}

type TypeParameters struct {
	BeforeOpeningAngleBracket bool `yaml:"beforeOpeningAngleBracket" toml:"beforeOpeningAngleBracket"`
	AroundTypeBounds          bool `yaml:"aroundTypeBounds" toml:"aroundTypeBounds"`
}

func DefaultSpaces() SpacesStyle {
	return SpacesStyle{
		BeforeParentheses: BeforeParentheses{
			If:           true,
			For:          true,
			While:        true,
			Switch:       true,
			Try:          true,
			Catch:        true,
			Synchronized: true,
		},
		AroundOperators: AroundOperators{
			Assignment:     true,
			Logical:        true,
			Equality:       true,
			Relational:     true,
			Bitwise:        true,
			Additive:       true,
			Multiplicative: true,
			Shift:          true,
			LambdaArrow:    true,
		},
		BeforeLeftBrace: BeforeLeftBrace{
			Class:        true,
			Method:       true,
			If:           true,
			Else:         true,
			For:          true,
			While:        true,
			Do:           true,
			Switch:       true,
			Try:          true,
			Catch:        true,
			Finally:      true,
			Synchronized: true,
		},
		BeforeKeywords: BeforeKeywords{
			Else:    true,
			While:   true,
			Catch:   true,
			Finally: true,
		},
		TernaryOperator: TernaryOperator{
			BeforeQuestionMark: true,
			AfterQuestionMark:  true,
			BeforeColon:        true,
			AfterColon:         true,
		},
		TypeArguments: TypeArguments{AfterComma: true},
		Other: OtherSpaces{
			AfterComma:           true,
			AfterForSemicolon:    true,
			AfterTypeCast:        true,
			BeforeColonInForEach: true,
		},
		TypeParameters: TypeParameters{AroundTypeBounds: true},
	}
}
