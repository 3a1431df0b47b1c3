// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report exports stage standings as an Excel workbook.

The workbook has three sheets: Ranking (place, country, artist, song,
total), Running order (order, country, artist, song), and Votes (user,
number of countries graded, favorite). Names are resolved from the stage
roster; a favorite outside the roster is written as its country id.
*/
package report
