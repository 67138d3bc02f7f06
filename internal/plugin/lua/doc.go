// Package lua runs plugin scripts on a restricted gopher-lua state.
//
// Only the base, package, table, string, and math libraries are opened.
// dofile, loadfile, load, and loadstring are removed, and package.path is
// cleared so require resolves preloaded modules only:
//
//	state, err := lua.NewState(
//	    lua.WithExecutionTimeout(2 * time.Second),
//	    lua.WithOutput(os.Stdout),
//	)
//	if err != nil {
//	    return err
//	}
//	defer state.Close()
//
//	state.LuaState().PreloadModule("keyreg", loader)
//	err = state.DoFile("init.lua")
//
// A State is not safe for use by multiple goroutines.
package lua
