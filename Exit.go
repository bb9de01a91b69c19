/*
File Name:  Exit.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers
*/

package core

// Exit codes signal why the application exited. Clients are encouraged to log additional details in a log file.
const (
	ExitSuccess           = 0 // This is actually never used.
	ExitErrorConfigAccess = 1 // Error accessing the config file.
	ExitErrorConfigRead   = 2 // Error reading the config file.
	ExitErrorConfigParse  = 3 // Error parsing the config file.
	ExitErrorLogInit      = 4 // Error initializing log file.
	ExitPrivateKeyCorrupt = 5 // Private key is corrupt.
	ExitPrivateKeyCreate  = 6 // Cannot create a new private key.
	ExitTrustDBInit       = 7 // Error opening the trust database.
	ExitGraceful          = 8 // Graceful shutdown.
)
