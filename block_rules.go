package gomark

// registerBuiltinBlockRules installs the default block-rule set: fence, atx
// heading, setext heading, thematic break, indented code, html block, link
// reference definition, block quote, list, table, directive. Each rule is
// tried in that order except the directive rule, whose priority (-10) puts
// it ahead of the fence rule (see directive.go). Paragraph accumulation needs no rule
// of its own -- BlockState.process falls back to addParagraphLine whenever
// nothing else matches.
func registerBuiltinBlockRules(p *Parser) {
	p.RegisterBlockRule(blockRuleFence())
	p.RegisterBlockRule(blockRuleATXHeading())
	p.RegisterBlockRule(blockRuleSetextHeading())
	p.RegisterBlockRule(blockRuleThematicBreak())
	p.RegisterBlockRule(blockRuleIndentedCode())
	p.RegisterBlockRule(blockRuleHTMLBlock())
	p.RegisterBlockRule(blockRuleLinkRef())
	p.RegisterBlockRule(blockRuleBlockQuote())
	p.RegisterBlockRule(blockRuleList())
	p.RegisterBlockRule(blockRuleTable())
	p.RegisterBlockRule(blockRuleDirective())
}
