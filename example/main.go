// File: iniconf/example/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"iniconf"
	"iniconf/secure"
)

const configFilePath = "example.ini"

func main() {
	// Write a config file on disk for the demo to read.
	initial := iniconf.NewStore().
		SetDefault("log_level", "debug").
		Set("server", "host", "0.0.0.0").
		Set("server", "port", "9090").
		Set("auth", "token", "s3cret-from-file")
	if err := iniconf.WriteFile(initial, configFilePath); err != nil {
		log.Fatalf("failed to write %s: %v", configFilePath, err)
	}
	defer os.Remove(configFilePath)

	// Layer declared defaults under the file: anything the file sets wins,
	// anything it omits falls back to the default.
	conf, err := iniconf.NewBuilder().
		WithDefaultVar("log_level", "info").
		WithDefault("server", "host", "localhost").
		WithDefault("server", "timeout", "30s").
		WithFile(configFilePath).
		Build()
	if err != nil {
		log.Fatalf("failed to build configuration: %v", err)
	}

	fmt.Println("log_level:", conf.MustGetDefault("log_level")) // file override
	fmt.Println("host:     ", conf.MustGet("server", "host"))   // file override
	fmt.Println("timeout:  ", conf.MustGet("server", "timeout")) // default kept

	// Decode one group into a typed struct.
	var server struct {
		Host string `ini:"host"`
		Port int    `ini:"port"`
	}
	if err := conf.Scan("server", &server); err != nil {
		log.Fatalf("failed to scan server group: %v", err)
	}
	fmt.Printf("typed:     %s:%d\n", server.Host, server.Port)

	// Wrap a credential so it can be wiped after use.
	token := secure.NewString(conf.MustGet("auth", "token"))
	fmt.Println("token len:", token.Len())
	defer token.Close()

	// Publish the final configuration process-wide.
	if err := iniconf.SetGlobal(conf); err != nil {
		log.Fatalf("global configuration already set: %v", err)
	}
	fmt.Println("global:   ", iniconf.Global().MustGetDefault("log_level"))

	// Export for tooling that cannot read INI.
	out, err := conf.Export(iniconf.FormatTOML)
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	fmt.Printf("as TOML:\n%s", out)
}
