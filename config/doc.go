// Package config provides application configuration management.
//
// The config package handles loading and validation of the application's
// configuration from YAML files and SCRIPTBOX_* environment variables. It
// covers server transport settings, the script runner (working directory,
// interpreter, timeout, backend) and logging.
//
// Usage:
//
//	cfg, err := config.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Working directory: %s\n", cfg.Runner.WorkingDirectory)
package config
