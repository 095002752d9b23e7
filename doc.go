// Package koaladb is an embedded, file-backed, schema-less document store.
//
// A database is a directory. Each collection inside it is backed by one BSON
// file holding the whole id to document mapping; the mapping is loaded once
// when the collection is opened and rewritten atomically after every mutation.
// A shared "store" directory holds binary attachments referenced from document
// fields.
//
// The model is deliberately small: single owning process, synchronous
// operations, linear-scan queries, no indexes, no transactions.
//
//	db, err := koaladb.Open("KoalaDB")
//	...
//	users, err := db.Collection("users")
//	...
//	doc, err := users.Create()
//	...
//	_, err = doc.Add(field.Fields{
//		"name": field.String("alex"),
//		"age":  field.Int(30),
//	})
//	...
//	adults := users.Find(query.New(query.Gte("age", field.Int(18))))
package koaladb
