/*
Package pydock provides convenient wrappers for running the stages of the
pyDock rigid-body docking pipeline: setup, ftdock, rotftdock, dockser,
dockrst, makePDB and oda.

The docking tool is a black box to this package. Each wrapper copies its
input files into a scratch directory under the file names the tool expects
(<name>_rec.pdb, <name>.rot, ...), writes the INI file where one is needed,
invokes '<binary> <path> <stage>' directly or inside a container, and copies
the outputs back under whatever names the caller asked for.

Note that full wrappers for every tool option are not provided. Options can
be added on an as-needed basis.
*/
package pydock
