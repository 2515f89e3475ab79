// Package scene holds the named regions and segments produced by evaluating
// a geometry script. A Scene is built once per evaluation and then only read.
package scene
