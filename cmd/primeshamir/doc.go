// primeshamir splits an integer secret into shares using Shamir's Secret
// Sharing over a prime field, and combines shares back into the secret.
//
// Usage:
// primeshamir split --secret <secret> -n <share count> -k <threshold>
// primeshamir combine [x:y ...]
//
// Shares are printed one per line as "x:y" in decimal. combine reads shares
// from its arguments or, when none are given, from stdin one per line. The
// number of shares given to combine is taken as the threshold, so exactly
// the shares of one split must be supplied, at least <threshold> of them.
//
// Global flags:
//
//	--config string
//	  	config file (yaml, json or toml)
//	--modulus uint
//	  	prime field modulus, must exceed the secret and the share count
//	  	(default 2305843009213693951)
//	-o, --output string
//	  	output format: text or json (default "text")
//	-v, --verbose
//	  	debug logging to stderr
//
// Every global flag can also be set through the environment, e.g.
// PRIMESHAMIR_MODULUS=65537, or through the config file.
//
// Example:
// Split the secret 1234 into 5 shares, requiring 3 to recover it, and
// recover it from the first three:
//
// > primeshamir split --secret 1234 -n 5 -k 3 | head -n 3 | primeshamir combine
package main
