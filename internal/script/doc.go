// Package script parses and executes binder op scripts, the line-oriented
// command format the binderctl binary runs.
//
// # Format
//
// One statement per line; fields are whitespace-separated. Blank lines and
// lines starting with '#' are ignored.
//
//	new <h>                          create handle <h>
//	copy <src> <dst>                 <dst> = logical copy of <src>
//	insert-front <h> <k> <v>         insert (k, v) at the front
//	insert-after <h> <prev> <k> <v>  insert (k, v) after <prev>
//	remove <h> [<k>]                 remove by key, or the front note
//	get <h> <k>                      print "<k>=<v>"
//	set <h> <k> <v>                  write <v> through a mutable read
//	len <h>                          print "len=<n>"
//	list <h>                         print "<k>=<v>" per note, in order
//	clear <h>                        remove every note
//
// Handles name binder instances; copy makes the copy-on-write relationship
// scriptable, so aliasing behavior can be demonstrated from the shell:
//
//	new a
//	insert-front a x 1
//	copy a b
//	set a x 2
//	get a x        # x=2
//	get b x        # x=1
//
// # Errors
//
// Parse rejects unknown verbs and wrong argument counts; Run stops at the
// first failing statement. Both report the offending line number.
package script
