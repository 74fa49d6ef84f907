package codacy

// allLanguages is every language a coding standard can cover; a newly
// created standard spans all of them so no repository is left unanalyzed.
var allLanguages = []string{
	"CSharp", "Java", "Go", "Kotlin", "Ruby", "Scala", "Python", "TypeScript",
	"Javascript", "CoffeeScript", "Swift", "JSP", "VisualBasic", "PHP", "PLSQL",
	"SQL", "TSQL", "Crystal", "Haskell", "Elixir", "Groovy", "Apex", "VisualForce",
	"Velocity", "CSS", "HTML", "LESS", "SASS", "Dockerfile", "Terraform", "Shell",
	"JSON", "XML", "Perl", "Lua", "Powershell", "YAML", "Cobol", "Rust", "Erlang",
	"ABAP", "Objective C", "Markdown", "Julia", "Scratch", "FSharp", "Lisp",
	"Prolog", "R", "Solidity", "Elm", "Fortran", "Dart", "OCaml", "Clojure",
	"C", "CPP",
}

// AllLanguages returns the full language list. The slice is a copy; callers
// may modify it freely.
func AllLanguages() []string {
	out := make([]string, len(allLanguages))
	copy(out, allLanguages)
	return out
}
