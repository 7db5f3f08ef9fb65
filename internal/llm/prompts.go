package llm

import (
	"fmt"
	"strings"

	"github.com/amoilanen/cliff/internal/action"
)

// planPromptTemplate teaches the model the full action catalog and demands a
// bare JSON plan object in return. Substitutions: history JSON, instruction,
// combined context.
const planPromptTemplate = `Based on the following instruction and context, create a step-by-step plan to achieve the goal.
NEVER directly reply with actions create_file, overwrite_file_contents, replace_file_lines unless asked to.
Output the plan ONLY as a JSON object of the following shape (the "action" tag MUST BE snake_case):

{
  "thought": "optional reasoning behind the plan" | null,
  "steps": [one or more actions]
}

Each step is one of the following JSON objects, where action_idx is the step's number in the plan:

// Ask LLM to reply with a one action subplan consisting of a create_file action for the file with path
{"action": "ask_llm_to_create_file", "action_idx": number, "path": string}
// Create file on the machine of the user, content WILL NOT BE EXPANDED OR PARSED AND WILL BE TREATED LITERALLY, no output
{"action": "create_file", "action_idx": number, "path": string, "content": string}
// Run command on the machine of the user, command is the command to execute, output the result
{"action": "run_command", "action_idx": number, "command": string}
// Search the web using the provided query, output the results
{"action": "search_web", "action_idx": number, "query": string}
// Read the content of the web page at the given url, output the result
{"action": "read_web_page", "action_idx": number, "url": string}
// Ask the user the specified question, output the result
{"action": "ask_user", "action_idx": number, "question": string}
// Delete the file at the specified path, no output
{"action": "delete_file", "action_idx": number, "path": string}
// Ask LLM to reply with a one action subplan consisting of an overwrite_file_contents action for the file with path, output the result of overwrite_file_contents
{"action": "ask_llm_to_overwrite_file_contents", "action_idx": number, "path": string}
// Overwrite the file at path, content WILL NOT BE EXPANDED OR PARSED AND WILL BE TREATED LITERALLY, no output
{"action": "overwrite_file_contents", "action_idx": number, "path": string, "content": string}
// Ask LLM to output a response to the user (using the knowledge of previous actions and their outputs)
{"action": "ask_llm", "action_idx": number, "prompt": string}
// Ask LLM to respond with a new subplan. instruction guides the sub-plan generation, context_sources provides file paths or URLs for context, the previously executed actions and their outputs are always provided to the LLM in this action
{"action": "ask_llm_for_plan", "action_idx": number, "instruction": string, "context_sources": [string]}
// Read the content of the file at the specified path, output the result
{"action": "read_file", "action_idx": number, "path": string}
// Find files matching the given pattern, output the result
{"action": "find_files", "action_idx": number, "pattern": string}
// Ask LLM to reply with a one action subplan consisting of a replace_file_lines action for the file with path, output the result of replace_file_lines
{"action": "ask_llm_to_replace_file_lines", "action_idx": number, "path": string}
// Replace lines from from_line_idx to until_line_idx in the file at path with replacement_lines, replacement_lines WILL NOT BE EXPANDED OR PARSED AND WILL BE TREATED LITERALLY, no output
{"action": "replace_file_lines", "action_idx": number, "path": string, "from_line_idx": number, "until_line_idx": number, "replacement_lines": string}
// Append content to the file at the specified path, no output
{"action": "append_to_file", "action_idx": number, "path": string, "content": string}
// Move the file from source to destination, no output
{"action": "move_file", "action_idx": number, "source": string, "destination": string}
// Copy the file from source to destination, no output
{"action": "copy_file", "action_idx": number, "source": string, "destination": string}
// List the contents of the directory at path, output the result
{"action": "list_directory", "action_idx": number, "path": string}
// Check if the path exists, output "true" or "false"
{"action": "check_path_exists", "action_idx": number, "path": string}

Previous executed actions (action and its output): %s

Instruction: %s

Context: %s

Respond ONLY with a valid JSON object`

func planPrompt(instruction string, hist *action.History, combinedContext string) string {
	if combinedContext == "" {
		combinedContext = "No context provided."
	}
	return fmt.Sprintf(planPromptTemplate, historyJSON(hist), instruction, combinedContext)
}

func askPrompt(prompt, combinedContext string) string {
	return fmt.Sprintf("Question: %s\n\nContext: %s", prompt, combinedContext)
}

func historyPrompt(question string, hist *action.History) string {
	return fmt.Sprintf("Question: %s\n\nPrevious executed actions (action and its output): %s",
		question, historyLines(hist))
}

// historyLines renders one line per executed action; actions without output
// appear as the bare action rendering.
func historyLines(hist *action.History) string {
	if hist == nil || hist.Len() == 0 {
		return ""
	}
	lines := make([]string, 0, hist.Len())
	for _, rec := range hist.Records {
		if rec.Output != nil {
			lines = append(lines, fmt.Sprintf("action: %s, output: %s", rec.Action, *rec.Output))
		} else {
			lines = append(lines, rec.Action.String())
		}
	}
	return strings.Join(lines, "\n")
}

func historyJSON(hist *action.History) string {
	if hist == nil {
		return "[]"
	}
	return hist.JSON()
}
