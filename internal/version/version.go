package version

// Version is recorded alongside the share store for future migrations. It has
// no behavioral contract.
const Version = "1.0.0"
