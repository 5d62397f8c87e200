// Package seeder owns the library schema: it creates the tables, refills them with synthetic data,
// dumps their content and runs a fixed set of reports against them.
//
// All work happens on a single connection. Data generation is pure and driven by a Faker,
// so it can be tested without a database.
package seeder
