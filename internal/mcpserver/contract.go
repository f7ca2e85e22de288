package mcpserver

// UsageContract describes the checklist tool surface for LLM consumers.
const UsageContract = `# Checkpad Tool Contract

The tools operate on the checklists of a single configured user. All
ownership rules apply: a checklist or item id that belongs to another
user behaves as if it does not exist.

## Entities

- **Checklist**: title (required), optional description, ordered items.
- **Item**: title (required), optional notes, done flag, integer order.
  Order is assigned when the item is created (current item count) and
  never renumbered; deleting items leaves gaps.

## Tools

1. ` + "`list_checklists`" + ` — all checklists, newest first, with items.
2. ` + "`read_checklist`" + ` — one checklist by id, items sorted by order.
3. ` + "`create_checklist`" + ` — requires a non-empty title.
4. ` + "`add_item`" + ` — appends to the end of a checklist.
5. ` + "`toggle_item`" + ` — sets the done flag; toggling twice restores the
   original state.

## Rules

- Titles must be non-empty; the tools reject blank titles.
- Ids are opaque strings; never invent one, always use ids returned by
  ` + "`list_checklists`" + ` or ` + "`read_checklist`" + `.
- There is no bulk operation; issue one call per change.
`
