package datemath

// DateLayout is the record date format ("2025-06-12").
const DateLayout = "2006-01-02"
