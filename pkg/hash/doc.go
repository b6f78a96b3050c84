// Package hash provides content fingerprints for schema files.
//
// A fingerprint is the first 16 hex characters of MD5(content). It is
// short enough to print next to parse results and stable across runs, so
// output produced from the same schema file can be matched up later.
//
// Example usage:
//
//	data, _ := os.ReadFile("schema.yaml")
//	fp := hash.Fingerprint(data)
//	// Returns: "5d41402abc4b2a76"
package hash
