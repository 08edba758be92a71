package odlyzko

// CoreSum exposes the kernel evaluation to package tests so interpolated
// engine values can be checked against direct computation.
var CoreSum = coreSum
