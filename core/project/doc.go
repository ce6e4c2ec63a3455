// Package project models an Unreal Engine project opened in VS Code through
// its generated .code-workspace file.
//
// A typical workspace lists the game folder and the engine folder:
//
//	{
//	  "folders": [
//	    { "name": "MyGame", "path": "." },
//	    { "name": "UE5", "path": "/opt/UnrealEngine" }
//	  ],
//	  "settings": { "C_Cpp.default.cppStandard": "c++17" }
//	}
//
// Every folder contributes a .vscode/c_cpp_properties.json (the build
// configurations whose cppStandard gets reconciled) and an optional
// .vscode/settings.json. All files are read as JSONC.
//
// Edits are made on the in-memory Configuration values. Nothing touches disk
// until Save is called; Pending renders what Save would write so callers can
// back the originals up first.
package project
