// Package jsast provides tree-sitter helpers shared by the JavaScript/TypeScript rules.
package jsast

// Node types of the tree-sitter javascript, typescript and tsx grammars.
const (
	NodeProgram     = "program"
	NodeComment     = "comment"
	NodeIdentifier  = "identifier"
	NodeString      = "string"
	NodeTemplate    = "template_string"
	NodeTemplateSub = "template_substitution"
	NodeParens      = "parenthesized_expression"
	NodeObject      = "object"
	NodePair        = "pair"
	NodePropertyID  = "property_identifier"
	NodeStatements  = "statement_block"
	NodeReturn      = "return_statement"

	NodeExport        = "export_statement"
	NodeImport        = "import_statement"
	NodeLexicalDecl   = "lexical_declaration"
	NodeVariableDecl  = "variable_declaration"
	NodeDeclarator    = "variable_declarator"
	NodeFunctionDecl  = "function_declaration"
	NodeGeneratorDecl = "generator_function_declaration"
	NodeClassDecl     = "class_declaration"
	NodeAbstractClass = "abstract_class_declaration"

	NodeArrowFunction = "arrow_function"
	NodeFunctionExpr  = "function_expression"
	// NodeFunctionLegacy is the function expression type of older javascript grammars.
	NodeFunctionLegacy = "function"
	NodeGeneratorExpr  = "generator_function"

	NodeInterfaceDecl = "interface_declaration"
	NodeTypeAlias     = "type_alias_declaration"
	NodeObjectType    = "object_type"
	NodeInterfaceBody = "interface_body"
	NodePropertySig   = "property_signature"
	NodeTypeID        = "type_identifier"

	NodeJSXElement     = "jsx_element"
	NodeJSXSelfClosing = "jsx_self_closing_element"
	NodeJSXOpening     = "jsx_opening_element"
	NodeJSXClosing     = "jsx_closing_element"
	NodeJSXFragment    = "jsx_fragment"
	NodeJSXText        = "jsx_text"
	NodeJSXExpression  = "jsx_expression"
	NodeJSXAttribute   = "jsx_attribute"
	NodeJSXNamespace   = "jsx_namespace_name"
	NodeMember         = "member_expression"
	NodeNestedID       = "nested_identifier"
	NodeSpread         = "spread_element"
	NodeCharRef        = "html_character_reference"
)

// Field names used with ChildByFieldName.
const (
	FieldName   = "name"
	FieldValue  = "value"
	FieldBody   = "body"
	FieldSource = "source"
	FieldKey    = "key"
)

// Attribute names the JSX rules look at.
const (
	AttrClassName = "className"
	AttrStyle     = "style"
	AttrOnClick   = "onClick"
	AttrOnKeyDown = "onKeyDown"
	AttrRole      = "role"
)
