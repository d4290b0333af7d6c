package common

// AppName names the default data directory and database file, and heads the
// console banner.
const AppName = "sitekeeper"
