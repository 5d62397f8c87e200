package seeder

// Table names and primary keys of the library schema.
const (
	TableBooks   = "books"
	TableReaders = "readers"
	TableLoans   = "bookloans"

	pkBooks   = "inventory_number"
	pkReaders = "reader_ticket_number"
	pkLoans   = "loan_id"
)

// Allowed values of the books.section and books.type columns.
const (
	SectionTechnical = "технічна"
	SectionFiction   = "художня"
	SectionEconomic  = "економічна"

	TypeManual     = "посібник"
	TypeBook       = "книга"
	TypePeriodical = "періодичне видання"
)

const createBooksTable = `
CREATE TABLE IF NOT EXISTS books (
    inventory_number SERIAL PRIMARY KEY,
    author VARCHAR(100) NOT NULL,
    title VARCHAR(200) NOT NULL,
    section VARCHAR(50) CHECK (section IN ('технічна', 'художня', 'економічна')),
    publication_year INTEGER CHECK (publication_year >= 1900 AND publication_year <= EXTRACT(YEAR FROM CURRENT_DATE)),
    pages_count INTEGER CHECK (pages_count > 0),
    price DECIMAL(10,2) CHECK (price >= 0),
    type VARCHAR(50) CHECK (type IN ('посібник', 'книга', 'періодичне видання')),
    copies_count INTEGER CHECK (copies_count >= 0),
    max_loan_days INTEGER CHECK (max_loan_days > 0)
)`

const createReadersTable = `
CREATE TABLE IF NOT EXISTS readers (
    reader_ticket_number SERIAL PRIMARY KEY,
    last_name VARCHAR(50) NOT NULL,
    first_name VARCHAR(50) NOT NULL,
    phone VARCHAR(20) CONSTRAINT valid_phone CHECK (phone ~ '^\+380[0-9]{9}$'),
    address TEXT,
    course INTEGER CHECK (course BETWEEN 1 AND 4),
    group_name VARCHAR(20)
)`

const createLoansTable = `
CREATE TABLE IF NOT EXISTS bookloans (
    loan_id SERIAL PRIMARY KEY,
    loan_date DATE NOT NULL,
    reader_ticket_number INTEGER REFERENCES readers(reader_ticket_number) ON DELETE CASCADE,
    book_inventory_number INTEGER REFERENCES books(inventory_number) ON DELETE CASCADE
)`

const truncateTables = `TRUNCATE TABLE bookloans, readers, books RESTART IDENTITY CASCADE`

// schemaStatements returns the DDL in dependency order.
func schemaStatements() []string {
	return []string{createBooksTable, createReadersTable, createLoansTable}
}
