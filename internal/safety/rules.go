package safety

// DefaultRules returns the standard denylist for code headed to the
// Revit execution host. The list targets capability escalation:
// dynamic evaluation, filesystem mutation, process and network
// spawning, OS-access imports, and attempts to escape the single
// script frame the host expects.
func DefaultRules() []Rule {
	return []Rule{
		// dynamic evaluation
		{Name: "dynamic-eval", Kind: KindCall, Pattern: "eval", Message: "dynamic evaluation via eval() is not allowed"},
		{Name: "dynamic-exec", Kind: KindCall, Pattern: "exec", Message: "dynamic execution via exec() is not allowed"},
		{Name: "dynamic-compile", Kind: KindCall, Pattern: "compile", Message: "runtime compilation via compile() is not allowed"},
		{Name: "dynamic-import", Kind: KindToken, Pattern: "__import__", Message: "dynamic imports via __import__ are not allowed"},

		// interpreter frame escapes
		{Name: "frame-globals", Kind: KindCall, Pattern: "globals", Message: "access to the global frame is not allowed"},
		{Name: "frame-locals", Kind: KindCall, Pattern: "locals", Message: "access to the local frame is not allowed"},
		{Name: "frame-vars", Kind: KindCall, Pattern: "vars", Message: "introspection via vars() is not allowed"},
		{Name: "frame-builtins", Kind: KindToken, Pattern: "__builtins__", Message: "access to interpreter builtins is not allowed"},
		{Name: "frame-sysmodules", Kind: KindToken, Pattern: "sys.modules", Message: "mutation of loaded modules is not allowed"},

		// filesystem mutation
		{Name: "fs-open", Kind: KindCall, Pattern: "open", Message: "direct file access is not allowed"},
		{Name: "fs-remove", Kind: KindToken, Pattern: "os.remove", Message: "file deletion is not allowed"},
		{Name: "fs-unlink", Kind: KindToken, Pattern: "os.unlink", Message: "file deletion is not allowed"},
		{Name: "fs-rmdir", Kind: KindToken, Pattern: "os.rmdir", Message: "directory deletion is not allowed"},
		{Name: "fs-rmtree", Kind: KindToken, Pattern: "shutil.rmtree", Message: "recursive deletion is not allowed"},

		// process and network spawning
		{Name: "proc-system", Kind: KindToken, Pattern: "os.system", Message: "shell execution is not allowed"},
		{Name: "proc-popen", Kind: KindToken, Pattern: "os.popen", Message: "process spawning is not allowed"},
		{Name: "proc-exec", Kind: KindToken, Pattern: "os.exec", Message: "process replacement is not allowed"},
		{Name: "proc-subprocess", Kind: KindImport, Pattern: "subprocess", Message: "the subprocess module is not allowed"},
		{Name: "net-socket", Kind: KindImport, Pattern: "socket", Message: "raw network access is not allowed"},
		{Name: "net-urllib", Kind: KindImport, Pattern: "urllib", Message: "network requests are not allowed"},
		{Name: "net-requests", Kind: KindImport, Pattern: "requests", Message: "network requests are not allowed"},

		// unrestricted OS access
		{Name: "os-ctypes", Kind: KindImport, Pattern: "ctypes", Message: "native library access is not allowed"},
		{Name: "os-shutil", Kind: KindImport, Pattern: "shutil", Message: "the shutil module is not allowed"},

		// interactive input would hang the host
		{Name: "io-input", Kind: KindCall, Pattern: "input", Message: "interactive input is not allowed"},
		{Name: "io-rawinput", Kind: KindCall, Pattern: "raw_input", Message: "interactive input is not allowed"},
	}
}
