package tree

func (*Identifier) isExpression()          {}
func (*Literal) isExpression()             {}
func (*FieldAccess) isExpression()         {}
func (*MethodInvocation) isExpression()    {}
func (*NewClass) isExpression()            {}
func (*NewArray) isExpression()            {}
func (*ArrayAccess) isExpression()         {}
func (*Binary) isExpression()              {}
func (*Unary) isExpression()               {}
func (*Assignment) isExpression()          {}
func (*AssignmentOperation) isExpression() {}
func (*Ternary) isExpression()             {}
func (*Parentheses) isExpression()         {}
func (*ControlParentheses) isExpression()  {}
func (*TypeCast) isExpression()            {}
func (*InstanceOf) isExpression()          {}
func (*Lambda) isExpression()              {}
func (*MemberReference) isExpression()     {}
func (*Annotation) isExpression()          {}
func (*Empty) isExpression()               {}
func (*Switch) isExpression()              {}
func (*Primitive) isExpression()           {}
func (*ParameterizedType) isExpression()   {}
func (*ArrayType) isExpression()           {}
func (*Wildcard) isExpression()            {}
func (*AnnotatedType) isExpression()       {}

func (*ClassDeclaration) isStatement()     {}
func (*MethodDeclaration) isStatement()    {}
func (*VariableDeclarations) isStatement() {}
func (*EnumValueSet) isStatement()         {}
func (*Block) isStatement()                {}
func (*If) isStatement()                   {}
func (*WhileLoop) isStatement()            {}
func (*DoWhileLoop) isStatement()          {}
func (*ForLoop) isStatement()              {}
func (*ForEachLoop) isStatement()          {}
func (*Return) isStatement()               {}
func (*Throw) isStatement()                {}
func (*Break) isStatement()                {}
func (*Continue) isStatement()             {}
func (*Empty) isStatement()                {}
func (*Try) isStatement()                  {}
func (*Switch) isStatement()               {}
func (*Case) isStatement()                 {}
func (*Label) isStatement()                {}
func (*Synchronized) isStatement()         {}
func (*Assert) isStatement()               {}
func (*Yield) isStatement()                {}
func (*MethodInvocation) isStatement()     {}
func (*NewClass) isStatement()             {}
func (*Assignment) isStatement()           {}
func (*AssignmentOperation) isStatement()  {}
func (*Unary) isStatement()                {}

func (*Identifier) isTypeTree()        {}
func (*FieldAccess) isTypeTree()       {}
func (*ParameterizedType) isTypeTree() {}
func (*Primitive) isTypeTree()         {}
func (*ArrayType) isTypeTree()         {}
func (*Wildcard) isTypeTree()          {}
func (*AnnotatedType) isTypeTree()     {}
func (*MultiCatch) isTypeTree()        {}

func (*Identifier) isNameTree()        {}
func (*FieldAccess) isNameTree()       {}
func (*ParameterizedType) isNameTree() {}
