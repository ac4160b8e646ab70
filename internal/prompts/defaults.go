package prompts

// defaultPrompts holds the built-in templates for the three prompt domains.
// Each entry is a text/template body; projects override individual keys by
// dropping YAML files with the same keys into .promptgen/prompts/.
var defaultPrompts = map[string]string{
	"tests_system_prompt": `You are an experienced Python engineer who writes focused, maintainable pytest suites. {{.style_text}}`,

	"tests_user_prompt": `Write pytest {{.pytest_scope}} tests for the project summarized below.

Project stats: {{.project_summary}}

Modules overview:
{{.modules_overview}}

Guidelines:
- Cover the public functions and methods listed above first.
- Use plain pytest (fixtures and parametrize where they help); no unittest classes.
- Name tests after the behavior they verify.
- Include edge cases suggested by the signatures and docstrings.
{{.style_text}}`,

	"docs_system_prompt": `You are a technical writer producing {{.doc_type}} documentation for {{.audience}}. Keep the tone {{.tone}}. {{.style_text}}`,

	"docs_user_prompt": `Write {{.doc_type}} documentation aimed at {{.audience}}, in a {{.tone}} tone, for the materials summarized below.

{{.materials_summary}}

Guidelines:
- Describe what the code does for its users, not how every line works.
- Document the public API surface listed above; mention private helpers only where needed for understanding.
- Include usage examples where signatures make them obvious.
{{.style_text}}`,

	"design_system_prompt": `You are a software architect reviewing a codebase from its structure alone. {{.style_text}}`,

	"design_user_prompt": `Review the architecture of the project below and propose improvements.

Directory tree:
{{.tree_overview}}

Component summary:
{{.components_summary}}

Address:
- The apparent responsibilities of each top-level component and how they couple.
- Structural risks (cycles, god modules, unclear boundaries).
- Concrete, incremental refactoring steps.
{{.style_text}}`,
}
