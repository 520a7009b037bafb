package tree

// SpaceLoc names the syntactic position a Space occupies.
type SpaceLoc string

const (
	LocPrefix                SpaceLoc = "prefix"
	LocEOF                   SpaceLoc = "eof"
	LocPackageSuffix         SpaceLoc = "package suffix"
	LocImportStatic          SpaceLoc = "import static"
	LocImportSuffix          SpaceLoc = "import suffix"
	LocClassKind             SpaceLoc = "class kind"
	LocTypeParameters        SpaceLoc = "type parameters"
	LocTypeParameterSuffix   SpaceLoc = "type parameter suffix"
	LocRecordComponents      SpaceLoc = "record components"
	LocRecordComponentSuffix SpaceLoc = "record component suffix"
	LocExtends               SpaceLoc = "extends"
	LocImplements            SpaceLoc = "implements"
	LocImplementsSuffix      SpaceLoc = "implements suffix"
	LocEnumValueSuffix       SpaceLoc = "enum value suffix"
	LocTrailingComma         SpaceLoc = "trailing comma suffix"
	LocArguments             SpaceLoc = "arguments"
	LocArgumentSuffix        SpaceLoc = "argument suffix"
	LocMethodParameters      SpaceLoc = "method parameters"
	LocMethodParameterSuffix SpaceLoc = "method parameter suffix"
	LocThrows                SpaceLoc = "throws"
	LocThrowsSuffix          SpaceLoc = "throws suffix"
	LocDefaultValue          SpaceLoc = "default value"
	LocVarargs               SpaceLoc = "varargs"
	LocVariableSuffix        SpaceLoc = "variable suffix"
	LocDimensionBefore       SpaceLoc = "dimension"
	LocDimensionInside       SpaceLoc = "dimension inside"
	LocInitializer           SpaceLoc = "initializer"
	LocAnnotationArguments   SpaceLoc = "annotation arguments"
	LocAnnotationArgSuffix   SpaceLoc = "annotation argument suffix"
	LocTypeBounds            SpaceLoc = "type bounds"
	LocTypeBoundSuffix       SpaceLoc = "type bound suffix"
	LocBlockStatic           SpaceLoc = "static block"
	LocStatementSuffix       SpaceLoc = "statement suffix"
	LocBlockEnd              SpaceLoc = "block end"
	LocBodySuffix            SpaceLoc = "body suffix"
	LocWhile                 SpaceLoc = "do-while while"
	LocForInitSuffix         SpaceLoc = "for init suffix"
	LocForConditionSuffix    SpaceLoc = "for condition suffix"
	LocForUpdateSuffix       SpaceLoc = "for update suffix"
	LocForEachVariableSuffix SpaceLoc = "for-each variable suffix"
	LocForEachIterableSuffix SpaceLoc = "for-each iterable suffix"
	LocResources             SpaceLoc = "try resources"
	LocResourceSuffix        SpaceLoc = "try resource suffix"
	LocFinally               SpaceLoc = "finally"
	LocCatchAlternative      SpaceLoc = "catch alternative suffix"
	LocCaseLabelSuffix       SpaceLoc = "case label suffix"
	LocCaseBodySuffix        SpaceLoc = "case body suffix"
	LocLabelSuffix           SpaceLoc = "label suffix"
	LocAssertDetail          SpaceLoc = "assert detail"
	LocFieldAccessName       SpaceLoc = "field access name"
	LocMethodSelectSuffix    SpaceLoc = "method select suffix"
	LocTypeArguments         SpaceLoc = "type arguments"
	LocTypeArgumentSuffix    SpaceLoc = "type argument suffix"
	LocArrayInitializer      SpaceLoc = "array initializer"
	LocArrayElementSuffix    SpaceLoc = "array element suffix"
	LocArrayIndexSuffix      SpaceLoc = "array index suffix"
	LocBinaryOperator        SpaceLoc = "binary operator"
	LocUnaryOperator         SpaceLoc = "unary operator"
	LocAssignment            SpaceLoc = "assignment"
	LocAssignmentOperator    SpaceLoc = "assignment operator"
	LocTernaryTrue           SpaceLoc = "ternary true"
	LocTernaryFalse          SpaceLoc = "ternary false"
	LocParenthesesSuffix     SpaceLoc = "parentheses suffix"
	LocInstanceOf            SpaceLoc = "instanceof"
	LocLambdaParameterSuffix SpaceLoc = "lambda parameter suffix"
	LocLambdaArrow           SpaceLoc = "lambda arrow"
	LocMemberReference       SpaceLoc = "member reference"
	LocWildcardBound         SpaceLoc = "wildcard bound"
)

type spaceFunc func(Space, SpaceLoc) Space

func mapRight[T any](f spaceFunc, rp RightPadded[T], loc SpaceLoc) RightPadded[T] {
	rp.After = f(rp.After, loc)
	if tc, ok := FindMarker[TrailingComma](rp.Markers); ok {
		tc.Suffix = f(tc.Suffix, LocTrailingComma)
		rp.Markers = SetMarker(rp.Markers, tc)
	}
	return rp
}

func mapRightPtr[T any](f spaceFunc, rp *RightPadded[T], loc SpaceLoc) *RightPadded[T] {
	if rp == nil {
		return nil
	}
	out := mapRight(f, *rp, loc)
	return &out
}

func mapRightList[T any](f spaceFunc, list []RightPadded[T], loc SpaceLoc) []RightPadded[T] {
	return MapRight(list, func(_ int, rp RightPadded[T]) RightPadded[T] {
		return mapRight(f, rp, loc)
	})
}

func mapLeft[T any](f spaceFunc, lp LeftPadded[T], loc SpaceLoc) LeftPadded[T] {
	lp.Before = f(lp.Before, loc)
	return lp
}

func mapLeftPtr[T any](f spaceFunc, lp *LeftPadded[T], loc SpaceLoc) *LeftPadded[T] {
	if lp == nil {
		return nil
	}
	out := mapLeft(f, *lp, loc)
	return &out
}

func mapContainer[T any](f spaceFunc, c Container[T], before, suffix SpaceLoc) Container[T] {
	c.Before = f(c.Before, before)
	c.Elements = mapRightList(f, c.Elements, suffix)
	return c
}

func mapContainerPtr[T any](f spaceFunc, c *Container[T], before, suffix SpaceLoc) *Container[T] {
	if c == nil {
		return nil
	}
	out := mapContainer(f, *c, before, suffix)
	return &out
}

func mapDimensions(f spaceFunc, dims []LeftPadded[Space]) []LeftPadded[Space] {
	if len(dims) == 0 {
		return dims
	}
	out := make([]LeftPadded[Space], len(dims))
	for i, d := range dims {
		d.Before = f(d.Before, LocDimensionBefore)
		d.Element = f(d.Element, LocDimensionInside)
		out[i] = d
	}
	return out
}

// MapSpaces returns a copy of t with fn applied to every Space the node owns
// directly: its prefix and the padding of its own fields. Spaces owned by
// child nodes are left alone.
func MapSpaces[T Tree](t T, fn func(Space, SpaceLoc) Space) T {
	f := spaceFunc(fn)
	meta := t.Metadata()
	meta.Prefix = f(meta.Prefix, LocPrefix)
	var out Tree
	switch n := Tree(t).(type) {
	case *CompilationUnit:
		c := *n
		c.Package = mapRightPtr(f, n.Package, LocPackageSuffix)
		c.Imports = mapRightList(f, n.Imports, LocImportSuffix)
		c.EOF = f(n.EOF, LocEOF)
		out = &c
	case *Import:
		c := *n
		if n.Static.Element {
			c.Static = mapLeft(f, n.Static, LocImportStatic)
		}
		out = &c
	case *ClassDeclaration:
		c := *n
		c.KindPrefix = f(n.KindPrefix, LocClassKind)
		c.TypeParameters = mapContainerPtr(f, n.TypeParameters, LocTypeParameters, LocTypeParameterSuffix)
		c.PrimaryConstructor = mapContainerPtr(f, n.PrimaryConstructor, LocRecordComponents, LocRecordComponentSuffix)
		c.Extends = mapLeftPtr(f, n.Extends, LocExtends)
		c.Implements = mapContainerPtr(f, n.Implements, LocImplements, LocImplementsSuffix)
		out = &c
	case *EnumValueSet:
		c := *n
		c.Enums = mapRightList(f, n.Enums, LocEnumValueSuffix)
		out = &c
	case *EnumValue:
		c := *n
		c.Arguments = mapContainerPtr(f, n.Arguments, LocArguments, LocArgumentSuffix)
		out = &c
	case *MethodDeclaration:
		c := *n
		c.TypeParameters = mapContainerPtr(f, n.TypeParameters, LocTypeParameters, LocTypeParameterSuffix)
		c.Parameters = mapContainer(f, n.Parameters, LocMethodParameters, LocMethodParameterSuffix)
		c.Throws = mapContainerPtr(f, n.Throws, LocThrows, LocThrowsSuffix)
		c.DefaultValue = mapLeftPtr(f, n.DefaultValue, LocDefaultValue)
		out = &c
	case *VariableDeclarations:
		c := *n
		if n.Varargs != nil {
			v := f(*n.Varargs, LocVarargs)
			c.Varargs = &v
		}
		c.Variables = mapRightList(f, n.Variables, LocVariableSuffix)
		out = &c
	case *NamedVariable:
		c := *n
		c.Dimensions = mapDimensions(f, n.Dimensions)
		c.Initializer = mapLeftPtr(f, n.Initializer, LocInitializer)
		out = &c
	case *Annotation:
		c := *n
		c.Arguments = mapContainerPtr(f, n.Arguments, LocAnnotationArguments, LocAnnotationArgSuffix)
		out = &c
	case *TypeParameter:
		c := *n
		c.Bounds = mapContainerPtr(f, n.Bounds, LocTypeBounds, LocTypeBoundSuffix)
		out = &c
	case *Block:
		c := *n
		if n.Static.Element {
			c.Static = mapRight(f, n.Static, LocBlockStatic)
		}
		c.Statements = mapRightList(f, n.Statements, LocStatementSuffix)
		c.End = f(n.End, LocBlockEnd)
		out = &c
	case *If:
		c := *n
		c.ThenPart = mapRight(f, n.ThenPart, LocBodySuffix)
		out = &c
	case *Else:
		c := *n
		c.Body = mapRight(f, n.Body, LocBodySuffix)
		out = &c
	case *WhileLoop:
		c := *n
		c.Body = mapRight(f, n.Body, LocBodySuffix)
		out = &c
	case *DoWhileLoop:
		c := *n
		c.Body = mapRight(f, n.Body, LocBodySuffix)
		c.Condition = mapLeft(f, n.Condition, LocWhile)
		out = &c
	case *ForLoop:
		c := *n
		c.Body = mapRight(f, n.Body, LocBodySuffix)
		out = &c
	case *ForControl:
		c := *n
		c.Init = mapRightList(f, n.Init, LocForInitSuffix)
		c.Condition = mapRight(f, n.Condition, LocForConditionSuffix)
		c.Update = mapRightList(f, n.Update, LocForUpdateSuffix)
		out = &c
	case *ForEachLoop:
		c := *n
		c.Body = mapRight(f, n.Body, LocBodySuffix)
		out = &c
	case *ForEachControl:
		c := *n
		c.Variable = mapRight(f, n.Variable, LocForEachVariableSuffix)
		c.Iterable = mapRight(f, n.Iterable, LocForEachIterableSuffix)
		out = &c
	case *Try:
		c := *n
		c.Resources = mapContainerPtr(f, n.Resources, LocResources, LocResourceSuffix)
		c.Finally = mapLeftPtr(f, n.Finally, LocFinally)
		out = &c
	case *MultiCatch:
		c := *n
		c.Alternatives = mapRightList(f, n.Alternatives, LocCatchAlternative)
		out = &c
	case *Case:
		c := *n
		c.Labels = mapRightList(f, n.Labels, LocCaseLabelSuffix)
		c.Statements = mapRightList(f, n.Statements, LocStatementSuffix)
		c.Body = mapRightPtr(f, n.Body, LocCaseBodySuffix)
		out = &c
	case *Label:
		c := *n
		c.Label = mapRight(f, n.Label, LocLabelSuffix)
		out = &c
	case *Assert:
		c := *n
		c.Detail = mapLeftPtr(f, n.Detail, LocAssertDetail)
		out = &c
	case *FieldAccess:
		c := *n
		c.Name = mapLeft(f, n.Name, LocFieldAccessName)
		out = &c
	case *MethodInvocation:
		c := *n
		c.Select = mapRightPtr(f, n.Select, LocMethodSelectSuffix)
		c.TypeParameters = mapContainerPtr(f, n.TypeParameters, LocTypeArguments, LocTypeArgumentSuffix)
		c.Arguments = mapContainer(f, n.Arguments, LocArguments, LocArgumentSuffix)
		out = &c
	case *NewClass:
		c := *n
		c.Arguments = mapContainer(f, n.Arguments, LocArguments, LocArgumentSuffix)
		out = &c
	case *NewArray:
		c := *n
		c.Initializer = mapContainerPtr(f, n.Initializer, LocArrayInitializer, LocArrayElementSuffix)
		out = &c
	case *ArrayDimension:
		c := *n
		c.Index = mapRight(f, n.Index, LocArrayIndexSuffix)
		out = &c
	case *Binary:
		c := *n
		c.Operator = mapLeft(f, n.Operator, LocBinaryOperator)
		out = &c
	case *Unary:
		c := *n
		c.Operator = mapLeft(f, n.Operator, LocUnaryOperator)
		out = &c
	case *Assignment:
		c := *n
		c.Assignment = mapLeft(f, n.Assignment, LocAssignment)
		out = &c
	case *AssignmentOperation:
		c := *n
		c.Operator = mapLeft(f, n.Operator, LocAssignmentOperator)
		out = &c
	case *Ternary:
		c := *n
		c.TruePart = mapLeft(f, n.TruePart, LocTernaryTrue)
		c.FalsePart = mapLeft(f, n.FalsePart, LocTernaryFalse)
		out = &c
	case *Parentheses:
		c := *n
		c.Tree = mapRight(f, n.Tree, LocParenthesesSuffix)
		out = &c
	case *ControlParentheses:
		c := *n
		c.Tree = mapRight(f, n.Tree, LocParenthesesSuffix)
		out = &c
	case *InstanceOf:
		c := *n
		c.Expression = mapRight(f, n.Expression, LocInstanceOf)
		out = &c
	case *LambdaParameters:
		c := *n
		c.Parameters = mapRightList(f, n.Parameters, LocLambdaParameterSuffix)
		out = &c
	case *Lambda:
		c := *n
		c.Arrow = f(n.Arrow, LocLambdaArrow)
		out = &c
	case *MemberReference:
		c := *n
		c.Reference = mapLeft(f, n.Reference, LocMemberReference)
		out = &c
	case *ParameterizedType:
		c := *n
		c.TypeParameters = mapContainerPtr(f, n.TypeParameters, LocTypeArguments, LocTypeArgumentSuffix)
		out = &c
	case *ArrayType:
		c := *n
		c.Dimension.Before = f(n.Dimension.Before, LocDimensionBefore)
		c.Dimension.Element = f(n.Dimension.Element, LocDimensionInside)
		out = &c
	case *Wildcard:
		c := *n
		c.Bound = mapLeftPtr(f, n.Bound, LocWildcardBound)
		out = &c
	case *Package, *Modifier, *Return, *Throw, *Break, *Continue, *Empty,
		*Catch, *Switch, *Synchronized, *Yield, *Identifier, *Literal,
		*ArrayAccess, *TypeCast, *Primitive, *AnnotatedType:
		out = n
	default:
		panic(&UnknownKindError{Op: "tree.MapSpaces", Tree: n})
	}
	return out.withMeta(meta).(T)
}

// Spaces lists the spaces t owns directly, in the order MapSpaces visits them.
func Spaces(t Tree) []Space {
	var out []Space
	MapSpaces(t, func(s Space, _ SpaceLoc) Space {
		out = append(out, s)
		return s
	})
	return out
}

// MapAllSpaces applies fn to every space in the tree rooted at t.
func MapAllSpaces[T Tree](t T, fn func(Space, SpaceLoc) Space) T {
	return Walk(VisitorFuncs{
		Post: func(n Tree, _ *Cursor) Tree {
			return MapSpaces(n, fn)
		},
	}, t, nil).(T)
}
