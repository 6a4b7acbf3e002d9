package parsing

// errNoText is recorded on the profile when there is no resume text to
// parse. Parsing itself never fails: per-field misses produce empty fields
// and only a fully absent input is marked this way.
const errNoText = "no resume text available for parsing"
