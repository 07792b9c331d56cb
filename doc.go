// Package stockexplorer implements the domain model of the Stock Data
// Explorer: calendar dates, daily price series, the fourteen summary
// statistics computed per ticker and date range, the in-session summary
// store, and CSV export.
//
// Fetching is abstracted behind the Provider interface; the yahoo
// subpackage implements it against Yahoo Finance. The cmd subpackage
// implements the interactive menus and the one-shot subcommands.
package stockexplorer
