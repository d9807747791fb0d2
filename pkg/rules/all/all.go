// Package all registers every bundled rule with the default registry.
package all

import (
	_ "github.com/specvital/frontend-rules/pkg/rules/a11y"
	_ "github.com/specvital/frontend-rules/pkg/rules/design"
	_ "github.com/specvital/frontend-rules/pkg/rules/filestructure"
	_ "github.com/specvital/frontend-rules/pkg/rules/imports"
	_ "github.com/specvital/frontend-rules/pkg/rules/jsdoc"
	_ "github.com/specvital/frontend-rules/pkg/rules/naming"
	_ "github.com/specvital/frontend-rules/pkg/rules/react"
)
