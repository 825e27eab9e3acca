package healthscribe

// Version is the current release of healthscribe.
const Version = "0.1.0"
