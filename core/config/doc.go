// Package config provides configuration management for ue-intellisense.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file in the working directory.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: local HTTP helper settings (port, API key)
//   - Database: run history connection details (sqlite or mysql)
//   - Storage: S3/MinIO credentials and the backup bucket
//   - Log: Logging level and format
//   - Project: where the .code-workspace lives and how folders are classified
//   - Reconcile: the expected cppStandard for UE5 projects
//
// # Absent versus empty
//
// PROJECT_CPP_STANDARD is bound without a default. Leaving it unset keeps
// Project.CppStandard nil, while setting it to an empty string explicitly
// defers to the cpptools setting.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Project.Root)
package config
