// Package commands defines the pokedexctl admin CLI.
//
// Commands
//
//   - migrate      Apply pending schema steps
//   - seed         Upsert species, shop items and missions from JSON files
//   - upload-art   Store shop item artwork in object storage
//
// # Implementation
//
// The root command loads configuration and opens the database before any subcommand runs.
// Redis and object storage are opened only by the subcommands that need them.
package commands
