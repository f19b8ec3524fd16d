package database

import (
	"gorm.io/gorm"
)

// EnsureRoutines installs the stored routines the query and creation services
// call. The services depend only on these call shapes: a tickets-sold scalar,
// an events-by-organizer set function, and the create-ticket procedure (the
// sole writer of tickets).
func EnsureRoutines(db *gorm.DB) error {
	routines := []string{
		// Sum of ticket quantities for one event.
		`CREATE OR REPLACE FUNCTION tickets_sold_count(p_event_id integer)
		RETURNS integer AS $$
			SELECT COALESCE(SUM(quantity), 0)::integer
			FROM tickets
			WHERE event_id = p_event_id;
		$$ LANGUAGE sql STABLE;`,

		// All events run by one organizer, including the event being viewed.
		`CREATE OR REPLACE FUNCTION events_by_organizer(p_organizer_id integer)
		RETURNS TABLE (
			event_id    integer,
			title       varchar,
			event_date  timestamptz,
			category    varchar,
			base_price  numeric,
			seats_total integer
		) AS $$
			SELECT e.event_id, e.title, e.event_date, e.category,
			       e.base_price, e.seats_total
			FROM events e
			WHERE e.organizer_id = p_organizer_id
			ORDER BY e.event_date;
		$$ LANGUAGE sql STABLE;`,

		// Inserts exactly one ticket and returns its id. Owns ticket-number
		// generation, price determination (the event's base price) and the
		// seat-availability check; callers re-read the row instead of
		// reconstructing it.
		`CREATE OR REPLACE FUNCTION create_ticket(
			p_event_id    integer,
			p_buyer_name  varchar,
			p_buyer_email varchar,
			p_quantity    integer
		) RETURNS integer AS $$
		DECLARE
			v_event  events%ROWTYPE;
			v_sold   integer;
			v_id     integer;
		BEGIN
			SELECT * INTO v_event FROM events WHERE event_id = p_event_id FOR UPDATE;
			IF NOT FOUND THEN
				RAISE EXCEPTION 'event % does not exist', p_event_id;
			END IF;

			SELECT COALESCE(SUM(quantity), 0) INTO v_sold
			FROM tickets WHERE event_id = p_event_id;

			IF v_sold + p_quantity > v_event.seats_total THEN
				RAISE EXCEPTION 'not enough seats for event %', p_event_id;
			END IF;

			INSERT INTO tickets (ticket_no, buyer_name, buyer_email, quantity, price, purchase_date, event_id)
			VALUES (
				'T-' || p_event_id || '-' || to_char(clock_timestamp(), 'YYYYMMDDHH24MISSMS'),
				p_buyer_name,
				p_buyer_email,
				p_quantity,
				v_event.base_price,
				now(),
				p_event_id
			)
			RETURNING ticket_id INTO v_id;

			RETURN v_id;
		END;
		$$ LANGUAGE plpgsql;`,
	}

	for _, ddl := range routines {
		if err := db.Exec(ddl).Error; err != nil {
			return err
		}
	}
	return nil
}
