// Package shell holds the infrastructure shared by the command line programs and the catalog web server:
// retrying the database connection, console colors and the construction of the structured logger.
//
// Nothing in here knows about books, readers or triples. The domain packages receive what they need
// (a Logger, a connected database handle, a Palette) through their constructors.
package shell
