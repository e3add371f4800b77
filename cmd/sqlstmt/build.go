package main

import (
	s "github.com/mitranim/sqlstmt"
)

/*
Applies the decoded description to the matching builder, in clause order.
Builder panics are returned as errors.
*/
func (self *stmtDoc) build() (out s.Stmt, err error) {
	err = s.Catch(func() {
		switch self.Kind {
		case `update`:
			out = self.buildUpdate()
		case `select`:
			out = self.buildSelect()
		case `insert`:
			out = self.buildInsert()
		case `delete`:
			out = self.buildDelete()
		}
	})
	return
}

func (self *stmtDoc) where() any {
	if self.Tpl != nil {
		return *self.Tpl
	}
	return self.Where
}

func (self *stmtDoc) hasWhere() bool { return self.HasWhere || self.Tpl != nil }

// Omitted fields fall back on the builder defaults.
func (self *stmtDoc) conj() []s.Conj {
	if self.Conj == `` {
		return nil
	}
	return []s.Conj{self.Conj}
}

func (self *stmtDoc) dir() []s.Dir {
	if self.Dir == `` {
		return nil
	}
	return []s.Dir{self.Dir}
}

func (self *stmtDoc) buildUpdate() s.Stmt {
	stmt := s.Update(self.Table).Set(self.Set)
	if self.hasWhere() {
		stmt.Where(self.where(), self.conj()...)
	}
	if self.Returning != nil {
		stmt.Returning(self.Returning...)
	}
	return stmt.Stmt
}

func (self *stmtDoc) buildSelect() s.Stmt {
	stmt := s.Select(self.Cols...).From(self.Table)
	if self.hasWhere() {
		stmt.Where(self.where(), self.conj()...)
	}
	if self.OrderBy != nil {
		stmt.OrderByCols(self.OrderBy, self.dir()...)
	}
	if self.Limit != nil {
		stmt.Limit(*self.Limit)
	}
	if self.Offset != nil {
		stmt.Offset(*self.Offset)
	}
	return stmt.Stmt
}

func (self *stmtDoc) buildInsert() s.Stmt {
	stmt := s.Insert(self.Table).Values(self.Values)
	if self.Returning != nil {
		stmt.Returning(self.Returning...)
	}
	return stmt.Stmt
}

func (self *stmtDoc) buildDelete() s.Stmt {
	stmt := s.Delete(self.Table)
	if self.hasWhere() {
		stmt.Where(self.where(), self.conj()...)
	}
	if self.Limit != nil {
		stmt.Limit(*self.Limit)
	}
	if self.Returning != nil {
		stmt.Returning(self.Returning...)
	}
	return stmt.Stmt
}
