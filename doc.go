// Package evm computes Earned Value Management reports from a time-phased
// project-cost ledger. It is designed as a single-pass batch core: a CSV
// ledger of Planned Value, Earned Value and Actual Cost per reporting period
// goes in, a detailed time series and an executive summary come out.
//
// The core functionalities include:
//   - Row Normalization: tolerant parsing of locale-ambiguous numeric fields
//     and multi-format dates into a validated, date-sorted Ledger, with
//     row-addressed diagnostics and all-or-nothing validation.
//   - Report Computation: a pure fold over the ledger producing cumulative
//     PV/EV/AC, schedule and cost variances (SV, CV) and performance indices
//     (SPI, CPI) per period, plus a terminal Summary with Budget at
//     Completion and two EAC/ETC/VAC forecast models.
//   - Degenerate-Division Policy: a ratio with a zero or near-zero
//     denominator is never an error; it becomes an explicit missing value,
//     propagated through every dependent forecast.
//   - Data Encoding: the detail table as CSV and the summary as an ordered
//     JSON object, both deterministic for identical inputs.
//
// This package serves as the foundational logic for the `evmr` command-line
// tool; all rendering and file handling live in the outer packages.
package evm
