package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	strlitgenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	strlitgen := NewAppBuild("strlitgen", "cmd/strlitgen", strlitgenVersion)
	strlitgen.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", strlitgenVersion).
			CgoEnabled(false)
	})
	strlitgen.Variant("windows", "amd64")
	strlitgen.Variant("linux", "amd64")
	strlitgen.Variant("linux", "arm64")
	strlitgen.Variant("darwin", "amd64")
	strlitgen.Variant("darwin", "arm64")
	b.ImportApp(strlitgen)

	b.Execute()
}
