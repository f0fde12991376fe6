package agent

import "fmt"

// Token budgets for prompt construction. Results can carry whole page
// dumps; trimming keeps validation and completion prompts bounded.
const (
	// validationResultBudget caps the last-result excerpt shown to the
	// validator.
	validationResultBudget = 150

	// stepResultBudget caps each history entry in the completion prompt.
	stepResultBudget = 80

	// historyBudget caps the full history block in the completion prompt.
	historyBudget = 3000

	// fallbackResultBudget caps the last-result excerpt in the
	// synthesized fallback answer.
	fallbackResultBudget = 50
)

const intentPromptTemplate = `You are a web agent specialized in semantic intent analysis.

Analyze the following user request and extract:
1. The real intent (what the user wants to do)
2. The target domain or service (YouTube, a specific site, etc.)
3. The main action (navigate, click, fill, extract, etc.)
4. Important semantic constraints (e.g. use ONLY youtube.com, not alternative sites)

Request: %q

Respond in JSON with the following shape:
{
  "intent_summary": "clear summary of the intent",
  "target_domain": "target domain or service (null if unspecified)",
  "main_action": "main action",
  "semantic_constraints": ["list of important semantic constraints"],
  "needs_search": true/false
}`

const planPromptTemplate = `You are an autonomous web agent. Create a DETAILED execution plan.

User intent: %q
Original request: %q

Available tools:
%s

CRITICAL RULES:
1. NEVER hardcode URLs - always use search_web first to discover official URLs
2. If the intent mentions YouTube, the URL MUST be on youtube.com (not alternative sites)
3. Always inspect the page with extract_page_elements before clicking
4. Plan step by step, without skipping stages
5. If you need the URL of a specific site, make search_web the first step

Produce the plan as a JSON list:
[
  {
    "step": 1,
    "action": "tool_name",
    "input": "parameter for the tool",
    "description": "what this step does"
  },
  ...
]

For tools with multiple parameters (type_text), use:
  "input": {"selector": "...", "text": "..."}

Be specific and complete. Output ONLY the JSON, with no additional text.`

const validationPromptTemplate = `You are a web agent validator.

Result of the last action: %q
Current step: %d of %d
More steps remaining: %t
Error detected: %t

Evaluate whether:
1. The result indicates success or failure
2. It is safe to continue to the next step
3. There is relevant information to extract from the result

Respond in JSON:
{
  "success": true/false,
  "can_continue": true/false,
  "notes": "observations about the result",
  "extracted_info": "useful information from the result (e.g. a discovered URL, visible elements)"
}`

const completionPromptTemplate = `You are a web agent that has completed a task.

Original task: %q
Intent: %q

Execution history:
%s

Produce a clear, objective summary of what was accomplished, including:
- What was done successfully
- Results obtained
- Whether the task finished or needs human intervention
- Suggested next steps (if applicable)

Answer concisely and helpfully.`

func intentPrompt(userInput string) string {
	return fmt.Sprintf(intentPromptTemplate, userInput)
}

func planPrompt(intent, userInput, toolsDescription string) string {
	return fmt.Sprintf(planPromptTemplate, intent, userInput, toolsDescription)
}

func validationPrompt(lastResult string, current, total int, hasMore, hasError bool) string {
	return fmt.Sprintf(validationPromptTemplate, lastResult, current, total, hasMore, hasError)
}

func completionPrompt(userInput, intent, historyText string) string {
	return fmt.Sprintf(completionPromptTemplate, userInput, intent, historyText)
}
