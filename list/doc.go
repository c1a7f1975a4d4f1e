/*
Package list provides a generic singly linked list with stable element
handles.

A List keeps head and tail pointers, so prepending and appending are both
constant-time. Elements expose their successor, which makes the list usable
as a chain primitive for higher-level containers (package hashmap stores its
bucket chains this way). All methods tolerate a nil receiver and treat it as
the empty list; removals from an empty list report absence instead of
failing.

# BSD License

Copyright (c) 2024–25, the arbor authors

Please refer to the license text in the root package documentation.
*/
package list
