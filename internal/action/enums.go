package action

// Type discriminates the closed set of actions the agent can perform. It is
// carried on the wire in the "action" field as a snake_case name.
type Type string

const (
	// TypeCreateFile writes a file; content is treated literally, no output
	TypeCreateFile Type = "create_file"
	// TypeAskLLMToCreateFile asks the LLM to reply with a create_file action for the path
	TypeAskLLMToCreateFile Type = "ask_llm_to_create_file"
	// TypeSearchWeb searches the web with the query, outputs the results
	TypeSearchWeb Type = "search_web"
	// TypeReadWebPage reads the web page at the URL, outputs the result
	TypeReadWebPage Type = "read_web_page"
	// TypeRunCommand runs a shell command, outputs its stdout
	TypeRunCommand Type = "run_command"
	// TypeAskUser asks the user a question, outputs the answer
	TypeAskUser Type = "ask_user"
	// TypeDeleteFile deletes the file at the path, no output
	TypeDeleteFile Type = "delete_file"
	// TypeOverwriteFileContents replaces a file's contents; content is treated literally, no output
	TypeOverwriteFileContents Type = "overwrite_file_contents"
	// TypeAskLLMToOverwriteFileContents asks the LLM to reply with an overwrite_file_contents action for the path
	TypeAskLLMToOverwriteFileContents Type = "ask_llm_to_overwrite_file_contents"
	// TypeAskLLM asks the LLM for a free-text answer using the execution history as context
	TypeAskLLM Type = "ask_llm"
	// TypeAskLLMForPlan asks the LLM for a sub-plan and executes it in place
	TypeAskLLMForPlan Type = "ask_llm_for_plan"
	// TypeReadFile reads the file at the path, outputs the contents
	TypeReadFile Type = "read_file"
	// TypeFindFiles finds files matching the glob pattern, outputs the matches
	TypeFindFiles Type = "find_files"
	// TypeReplaceFileLines replaces lines [from_line_idx, until_line_idx] with literal replacement lines, no output
	TypeReplaceFileLines Type = "replace_file_lines"
	// TypeAskLLMToReplaceFileLines asks the LLM to reply with a replace_file_lines action for the path
	TypeAskLLMToReplaceFileLines Type = "ask_llm_to_replace_file_lines"
	// TypeAppendToFile appends content plus a trailing newline to the file, no output
	TypeAppendToFile Type = "append_to_file"
	// TypeMoveFile moves a file from source to destination, no output
	TypeMoveFile Type = "move_file"
	// TypeCopyFile copies a file from source to destination, no output
	TypeCopyFile Type = "copy_file"
	// TypeListDirectory lists the entries of the directory at the path
	TypeListDirectory Type = "list_directory"
	// TypeCheckPathExists outputs "true" or "false" for the path
	TypeCheckPathExists Type = "check_path_exists"
)

// IsValid checks if a type is part of the closed action set
func (t Type) IsValid() bool {
	for _, valid := range AllTypes() {
		if t == valid {
			return true
		}
	}
	return false
}

// AllTypes returns all valid action types
func AllTypes() []Type {
	return []Type{
		TypeCreateFile, TypeAskLLMToCreateFile, TypeSearchWeb, TypeReadWebPage,
		TypeRunCommand, TypeAskUser, TypeDeleteFile, TypeOverwriteFileContents,
		TypeAskLLMToOverwriteFileContents, TypeAskLLM, TypeAskLLMForPlan,
		TypeReadFile, TypeFindFiles, TypeReplaceFileLines,
		TypeAskLLMToReplaceFileLines, TypeAppendToFile, TypeMoveFile,
		TypeCopyFile, TypeListDirectory, TypeCheckPathExists,
	}
}

// String returns the wire (snake_case) name of the type
func (t Type) String() string {
	return string(t)
}

// Name returns the variant name used in prompts and error messages
func (t Type) Name() string {
	switch t {
	case TypeCreateFile:
		return "CreateFile"
	case TypeAskLLMToCreateFile:
		return "AskLlmToCreateFile"
	case TypeSearchWeb:
		return "SearchWeb"
	case TypeReadWebPage:
		return "ReadWebPage"
	case TypeRunCommand:
		return "RunCommand"
	case TypeAskUser:
		return "AskUser"
	case TypeDeleteFile:
		return "DeleteFile"
	case TypeOverwriteFileContents:
		return "OverwriteFileContents"
	case TypeAskLLMToOverwriteFileContents:
		return "AskLlmToOverwriteFileContents"
	case TypeAskLLM:
		return "AskLlm"
	case TypeAskLLMForPlan:
		return "AskLlmForPlan"
	case TypeReadFile:
		return "ReadFile"
	case TypeFindFiles:
		return "FindFiles"
	case TypeReplaceFileLines:
		return "ReplaceFileLines"
	case TypeAskLLMToReplaceFileLines:
		return "AskLlmToReplaceFileLines"
	case TypeAppendToFile:
		return "AppendToFile"
	case TypeMoveFile:
		return "MoveFile"
	case TypeCopyFile:
		return "CopyFile"
	case TypeListDirectory:
		return "ListDirectory"
	case TypeCheckPathExists:
		return "CheckPathExists"
	}
	return string(t)
}
