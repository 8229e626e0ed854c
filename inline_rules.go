package gomark

// registerBuiltinInlineRules installs the default inline-rule set, tried in
// priority order at every scan position (spec §4.D): backslash escapes,
// code spans, autolinks, raw inline HTML, entities, line breaks, emphasis
// delimiter runs, and link/image bracket handling. A position matching none
// of these falls back to one literal rune, handled directly by ParseInline.
func registerBuiltinInlineRules(p *Parser) {
	p.RegisterInlineRule(inlineRuleEscape())
	p.RegisterInlineRule(inlineRuleCodeSpan())
	p.RegisterInlineRule(inlineRuleAutolink())
	p.RegisterInlineRule(inlineRuleRawHTML())
	p.RegisterInlineRule(inlineRuleEntity())
	p.RegisterInlineRule(inlineRuleLineBreak())
	p.RegisterInlineRule(inlineRuleEmphasis())
	p.RegisterInlineRule(inlineRuleBracketOpen())
	p.RegisterInlineRule(inlineRuleBracketClose())
}
