// Package pricetracker computes inflation and volatility figures for a set of commodities
// from a long-form price table.
//
// The input is a table of observations: one price per commodity, unit and date, as produced
// from a retail price spreadsheet (see package xlsx). From it, the package derives:
//   - Yearly and monthly inflation: the percent change of each commodity's price between the
//     latest date in the table (the anchor) and one year or one month before (the offset).
//   - Volatility: the coefficient of variation of each commodity's prices on the anchor and
//     the one-year offset dates.
//
// Every computation is a pure function of an immutable Table. Data problems never abort a
// computation: unparseable cells become null values, missing history is reported as
// ErrInsufficientHistory, and degenerate arithmetic (null operand, zero base, single sample)
// is kept as a flagged Measure instead of being silently turned into a number.
//
// This package serves as the foundational logic for the `cpt` command-line tool.
package pricetracker
