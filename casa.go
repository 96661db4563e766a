package casa

// Version is the current release of casa.
const Version = "0.2.0"
