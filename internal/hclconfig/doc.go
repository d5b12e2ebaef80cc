// Package hclconfig is the HCL implementation of the configuration boundary.
// It parses user-authored matrix files, evaluates the handful of expressions
// the schema allows, and translates the result into the format-agnostic
// model.BuildMatrixConfig. Nothing outside this package touches HCL types.
package hclconfig
