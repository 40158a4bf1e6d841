// Package syntax provides types for SEC EDGAR identifiers.
//
// The main type is [CIK], a Central Index Key: a number of up to 10 decimal digits identifying a filer. Values are only constructed through [ParseCIK] or [CIKFromInteger], which enforce the syntax and range, so a CIK in hand is always valid.
//
// This package checks syntax only. It does not resolve which entity a CIK refers to, and CIKs carry no check digit.
//
// Glossary entry: https://www.sec.gov/page/edgar-glossary#cik
package syntax
