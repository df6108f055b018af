package database

import "database/sql"

// schema is applied on startup. Statement order matters: projects and
// reference tables must exist before the tables that reference them.
const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    project_name TEXT NOT NULL,
    location TEXT NOT NULL DEFAULT '',
    total_flats INT NOT NULL,
    developer_share INT NOT NULL,
    landowner_share INT NOT NULL,
    start_date DATE NOT NULL,
    status TEXT NOT NULL DEFAULT 'Planning',
    estimated_budget BIGINT NOT NULL DEFAULT 0,
    target_sell BIGINT NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ,
    deleted_at TIMESTAMPTZ,
    CONSTRAINT projects_share_split CHECK (developer_share + landowner_share = 100)
);

CREATE TABLE IF NOT EXISTS flats (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    project_id UUID NOT NULL REFERENCES projects(id),
    flat_number TEXT NOT NULL,
    flat_size INT NOT NULL DEFAULT 0,
    ownership TEXT NOT NULL DEFAULT 'Developer',
    status TEXT NOT NULL DEFAULT 'Available',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ,
    UNIQUE (project_id, flat_number)
);

CREATE TABLE IF NOT EXISTS customers (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    full_name TEXT NOT NULL,
    mobile TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    nid_number TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ,
    deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS vendors (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    vendor_name TEXT NOT NULL,
    phone_number TEXT NOT NULL DEFAULT '',
    enterprise_name TEXT NOT NULL DEFAULT '',
    details TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ,
    deleted_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS sales (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    project_id UUID NOT NULL REFERENCES projects(id),
    flat_id UUID NOT NULL REFERENCES flats(id),
    customer_id UUID NOT NULL REFERENCES customers(id),
    base_price BIGINT NOT NULL,
    parking_charge BIGINT NOT NULL DEFAULT 0,
    utility_charge BIGINT NOT NULL DEFAULT 0,
    total_price BIGINT NOT NULL,
    downpayment BIGINT NOT NULL DEFAULT 0,
    monthly_installment BIGINT NOT NULL DEFAULT 0,
    sale_date DATE NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    deed_link TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ,
    deleted_at TIMESTAMPTZ
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_sales_one_per_flat
    ON sales(flat_id) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS sale_extra_costs (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    sale_id UUID NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
    position INT NOT NULL,
    purpose TEXT NOT NULL,
    amount BIGINT NOT NULL,
    UNIQUE (sale_id, position)
);

CREATE TABLE IF NOT EXISTS expense_items (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS operating_cost_items (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS expenses (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    expense_no TEXT NOT NULL,
    vendor_id UUID NOT NULL REFERENCES vendors(id),
    project_id UUID NOT NULL REFERENCES projects(id),
    item_id UUID NOT NULL REFERENCES expense_items(id),
    quantity BIGINT NOT NULL DEFAULT 1,
    price BIGINT NOT NULL,
    paid_amount BIGINT NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'Unpaid',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ,
    deleted_at TIMESTAMPTZ,
    CONSTRAINT expenses_paid_bounds CHECK (paid_amount >= 0 AND paid_amount <= price)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_expenses_expense_no ON expenses(expense_no);

CREATE TABLE IF NOT EXISTS operating_costs (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    cost_date DATE NOT NULL,
    item_id UUID NOT NULL REFERENCES operating_cost_items(id),
    amount BIGINT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    reference TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS inflow_transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    project_id UUID NOT NULL REFERENCES projects(id),
    flat_id UUID NOT NULL REFERENCES flats(id),
    customer_id UUID NOT NULL REFERENCES customers(id),
    amount BIGINT NOT NULL,
    tx_date DATE NOT NULL,
    payment_type TEXT NOT NULL,
    payment_method TEXT NOT NULL DEFAULT '',
    receipt_no TEXT NOT NULL DEFAULT '',
    reference TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS outflow_transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    project_id UUID REFERENCES projects(id),
    amount BIGINT NOT NULL,
    tx_date DATE NOT NULL,
    expense_category TEXT NOT NULL DEFAULT '',
    supplier_vendor TEXT NOT NULL DEFAULT '',
    expense_no TEXT,
    payment_method TEXT NOT NULL DEFAULT '',
    reference TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_flats_project_id ON flats(project_id);
CREATE INDEX IF NOT EXISTS idx_sales_project_id ON sales(project_id);
CREATE INDEX IF NOT EXISTS idx_sales_customer_id ON sales(customer_id);
CREATE INDEX IF NOT EXISTS idx_inflow_project_id ON inflow_transactions(project_id);
CREATE INDEX IF NOT EXISTS idx_inflow_customer_id ON inflow_transactions(customer_id);
CREATE INDEX IF NOT EXISTS idx_inflow_flat_id ON inflow_transactions(flat_id);
CREATE INDEX IF NOT EXISTS idx_outflow_project_id ON outflow_transactions(project_id);
CREATE INDEX IF NOT EXISTS idx_outflow_expense_no ON outflow_transactions(expense_no);
`

func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
